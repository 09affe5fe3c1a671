// Package builtins runs the action strings skins attach to controls, the
// payload of GUI_MSG_EXECUTE.
package builtins

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/GiGurra/cmder"
	"github.com/gen2brain/beeep"
	"github.com/gigurra/guiinfo/cmd/gui/control"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/message"
	"github.com/gigurra/guiinfo/cmd/gui/skin"
	"github.com/gigurra/guiinfo/cmd/gui/window"
)

// Player receives PlayerControl and PlayMedia.
type Player interface {
	Control(command string) error
	Play(path string) error
}

type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier shows notifications through the desktop notification
// service.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// CommandRunner runs an external command and returns its stdout.
type CommandRunner func(ctx context.Context, timeout time.Duration, args []string) (string, error)

// ExecCommand is the CommandRunner used unless one is injected.
func ExecCommand(ctx context.Context, timeout time.Duration, args []string) (string, error) {
	res := cmder.New(args...).
		WithAttemptTimeout(timeout).
		Run(ctx)
	if res.Err != nil {
		return res.StdOut, fmt.Errorf("%s: %w", args[0], res.Err)
	}
	return res.StdOut, nil
}

type Option func(*Runner)

func WithSkin(s *skin.Store) Option { return func(r *Runner) { r.skin = s } }

func WithPlayer(p Player) Option { return func(r *Runner) { r.player = p } }

func WithNotifier(n Notifier) Option { return func(r *Runner) { r.notify = n } }

func WithCommandRunner(run CommandRunner) Option { return func(r *Runner) { r.run = run } }

func WithExecTimeout(d time.Duration) Option { return func(r *Runner) { r.execTimeout = d } }

// Runner implements window.Executor. All commands except System.Exec run
// synchronously on the render thread.
type Runner struct {
	ctx         context.Context
	wm          *window.Manager
	skin        *skin.Store
	player      Player
	notify      Notifier
	run         CommandRunner
	execTimeout time.Duration

	wg sync.WaitGroup
}

type handler func(r *Runner, params []string, windowID int) error

var handlers = map[string]handler{
	"activatewindow":     (*Runner).activateWindow,
	"replacewindow":      (*Runner).activateWindow,
	"dialog.close":       (*Runner).closeDialog,
	"setfocus":           (*Runner).setFocus,
	"control.setfocus":   (*Runner).setFocus,
	"control.move":       (*Runner).moveControl,
	"action":             (*Runner).action,
	"skin.togglesetting": (*Runner).skinToggle,
	"skin.setbool":       (*Runner).skinSetBool,
	"skin.setstring":     (*Runner).skinSetString,
	"skin.reset":         (*Runner).skinReset,
	"skin.settheme":      (*Runner).skinSetTheme,
	"setproperty":        (*Runner).setProperty,
	"clearproperty":      (*Runner).clearProperty,
	"playercontrol":      (*Runner).playerControl,
	"playmedia":          (*Runner).playMedia,
	"notification":       (*Runner).notification,
	"system.exec":        (*Runner).systemExec,
	"system.execwait":    (*Runner).systemExec,
}

// New returns a runner bound to wm. ctx bounds the lifetime of commands
// started by System.Exec.
func New(ctx context.Context, wm *window.Manager, opts ...Option) *Runner {
	r := &Runner{
		ctx:         ctx,
		wm:          wm,
		notify:      DesktopNotifier{},
		run:         ExecCommand,
		execTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Has reports whether name is a known builtin.
func Has(name string) bool {
	_, ok := handlers[strings.ToLower(name)]
	return ok
}

// Execute runs command. The window it came from is the ControlID of the
// execute message, 0 for the topmost window. $INFO and $LOCALIZE parts are
// resolved against the message's item first.
func (r *Runner) Execute(command string, msg *message.Message) bool {
	windowID := 0
	var item *listitem.Item
	if msg != nil {
		windowID, item = msg.ControlID, msg.Item
	}
	if strings.Contains(command, "$") {
		command = r.wm.ResolveLabel(command, windowID, item)
	}
	name, params := Split(command)
	h, ok := handlers[name]
	if !ok {
		slog.Warn("builtins: unknown command", "command", command)
		return false
	}
	if err := h(r, params, windowID); err != nil {
		slog.Warn("builtins: command failed", "command", command, "error", err)
		return false
	}
	return true
}

// Wait blocks until every started System.Exec command has finished.
func (r *Runner) Wait() { r.wg.Wait() }

func need(params []string, n int, usage string) error {
	if len(params) < n {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

func (r *Runner) activateWindow(params []string, _ int) error {
	if err := need(params, 1, "ActivateWindow(window[,path])"); err != nil {
		return err
	}
	return r.wm.ActivateByName(params[0])
}

func (r *Runner) closeDialog(params []string, _ int) error {
	if err := need(params, 1, "Dialog.Close(dialog|all[,force])"); err != nil {
		return err
	}
	if strings.EqualFold(params[0], "all") {
		r.wm.CloseAllDialogs()
		return nil
	}
	id, ok := r.wm.WindowID(params[0])
	if !ok {
		return fmt.Errorf("unknown dialog %q", params[0])
	}
	r.wm.CloseDialog(id)
	return nil
}

func atoi(s, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", what, s, err)
	}
	return n, nil
}

// setFocus sends SETFOCUS with Param1 = position+1, 0 keeping the
// current selection.
func (r *Runner) setFocus(params []string, windowID int) error {
	if err := need(params, 1, "SetFocus(id[,position])"); err != nil {
		return err
	}
	id, err := atoi(params[0], "control id")
	if err != nil {
		return err
	}
	msg := &message.Message{ID: message.SetFocus, ControlID: id, WindowID: windowID}
	if len(params) > 1 {
		pos, err := atoi(params[1], "position")
		if err != nil {
			return err
		}
		msg.Param1 = pos + 1
	}
	if !r.wm.SendMessage(msg) {
		return fmt.Errorf("control %d did not take focus", id)
	}
	return nil
}

func (r *Runner) moveControl(params []string, windowID int) error {
	if err := need(params, 2, "Control.Move(id,offset)"); err != nil {
		return err
	}
	id, err := atoi(params[0], "control id")
	if err != nil {
		return err
	}
	offset, err := atoi(params[1], "offset")
	if err != nil {
		return err
	}
	r.wm.SendMessage(&message.Message{ID: message.MoveOffset, ControlID: id, WindowID: windowID, Param1: offset})
	return nil
}

func (r *Runner) action(params []string, _ int) error {
	if err := need(params, 1, "Action(name)"); err != nil {
		return err
	}
	id, ok := control.ActionByName(strings.ToLower(params[0]))
	if !ok {
		return fmt.Errorf("unknown action %q", params[0])
	}
	r.wm.OnAction(control.NewAction(id))
	return nil
}

func (r *Runner) skinStore() (*skin.Store, error) {
	if r.skin == nil {
		return nil, fmt.Errorf("no skin settings")
	}
	return r.skin, nil
}

func (r *Runner) skinToggle(params []string, _ int) error {
	if err := need(params, 1, "Skin.ToggleSetting(name)"); err != nil {
		return err
	}
	s, err := r.skinStore()
	if err != nil {
		return err
	}
	_, err = s.ToggleBool(params[0])
	return err
}

// skinSetBool sets name to true, or to the given value when it parses.
func (r *Runner) skinSetBool(params []string, _ int) error {
	if err := need(params, 1, "Skin.SetBool(name[,value])"); err != nil {
		return err
	}
	s, err := r.skinStore()
	if err != nil {
		return err
	}
	v := true
	if len(params) > 1 {
		v, err = strconv.ParseBool(params[1])
		if err != nil {
			return fmt.Errorf("bad bool %q: %w", params[1], err)
		}
	}
	return s.SetBool(params[0], v)
}

func (r *Runner) skinSetString(params []string, _ int) error {
	if err := need(params, 2, "Skin.SetString(name,value)"); err != nil {
		return err
	}
	s, err := r.skinStore()
	if err != nil {
		return err
	}
	return s.SetString(params[0], params[1])
}

func (r *Runner) skinReset(params []string, _ int) error {
	if err := need(params, 1, "Skin.Reset(name)"); err != nil {
		return err
	}
	s, err := r.skinStore()
	if err != nil {
		return err
	}
	return s.Reset(params[0])
}

func (r *Runner) skinSetTheme(params []string, _ int) error {
	if err := need(params, 1, "Skin.SetTheme(name)"); err != nil {
		return err
	}
	s, err := r.skinStore()
	if err != nil {
		return err
	}
	return s.SetTheme(params[0])
}

// propertyWindow picks the window named by the optional parameter, the
// home window otherwise.
func (r *Runner) propertyWindow(params []string, i int) (*window.Window, error) {
	id := window.Home
	if len(params) > i && params[i] != "" {
		var ok bool
		if id, ok = r.wm.WindowID(params[i]); !ok {
			return nil, fmt.Errorf("unknown window %q", params[i])
		}
	}
	w := r.wm.Window(id)
	if w == nil {
		return nil, fmt.Errorf("window %d not loaded", id)
	}
	return w, nil
}

func (r *Runner) setProperty(params []string, _ int) error {
	if err := need(params, 2, "SetProperty(key,value[,window])"); err != nil {
		return err
	}
	w, err := r.propertyWindow(params, 2)
	if err != nil {
		return err
	}
	w.SetProperty(params[0], params[1])
	return nil
}

func (r *Runner) clearProperty(params []string, _ int) error {
	if err := need(params, 1, "ClearProperty(key[,window])"); err != nil {
		return err
	}
	w, err := r.propertyWindow(params, 1)
	if err != nil {
		return err
	}
	w.ClearProperty(params[0])
	return nil
}

func (r *Runner) playerControl(params []string, _ int) error {
	if err := need(params, 1, "PlayerControl(command)"); err != nil {
		return err
	}
	if r.player == nil {
		return fmt.Errorf("no player")
	}
	return r.player.Control(strings.ToLower(params[0]))
}

func (r *Runner) playMedia(params []string, _ int) error {
	if err := need(params, 1, "PlayMedia(path)"); err != nil {
		return err
	}
	if r.player == nil {
		return fmt.Errorf("no player")
	}
	return r.player.Play(params[0])
}

func (r *Runner) notification(params []string, _ int) error {
	if err := need(params, 2, "Notification(header,message[,time][,image])"); err != nil {
		return err
	}
	if r.notify == nil {
		return fmt.Errorf("no notifier")
	}
	return r.notify.Notify(params[0], params[1])
}

// systemExec starts the command in the background; its outcome is only
// logged. The render thread never waits for it.
func (r *Runner) systemExec(params []string, _ int) error {
	if err := need(params, 1, "System.Exec(command)"); err != nil {
		return err
	}
	args := strings.Fields(params[0])
	args = append(args, params[1:]...)
	if len(args) == 0 {
		return fmt.Errorf("empty command")
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		out, err := r.run(r.ctx, r.execTimeout, args)
		if err != nil {
			slog.Warn("builtins: exec failed", "command", args, "error", err)
			return
		}
		slog.Debug("builtins: exec done", "command", args, "output", strings.TrimSpace(out))
	}()
	return nil
}
