package infoprov

import (
	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

// PVRInfo is the cache kept by the PVR polling service. Reads copy under
// the service lock and never block on the backend.
type PVRInfo interface {
	Label(code infocode.Code, format string) (string, bool)
	Int(code infocode.Code) (int, bool)
	Bool(code infocode.Code) (bool, bool)
}

type PVR struct {
	base
	info PVRInfo
}

func NewPVR(info PVRInfo) *PVR {
	return &PVR{info: info}
}

func (p *PVR) Name() string { return "pvr" }

func (p *PVR) Ranges() []infocode.Range {
	return []infocode.Range{infocode.RangePVR}
}

func (p *PVR) GetLabel(_ *listitem.Item, q Query, _ *string) (string, bool) {
	if p.info == nil {
		return "", false
	}
	return p.info.Label(q.Code(), q.Info.Data3)
}

func (p *PVR) GetInt(_ *listitem.Item, q Query) (int, bool) {
	if p.info == nil {
		return 0, false
	}
	return p.info.Int(q.Code())
}

func (p *PVR) GetBool(_ *listitem.Item, q Query) (bool, bool) {
	if p.info == nil {
		return false, false
	}
	return p.info.Bool(q.Code())
}
