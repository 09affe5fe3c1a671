package infoprov

import (
	"fmt"

	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

type SlideshowStatus struct {
	Active  bool           `json:"active"`
	Paused  bool           `json:"paused"`
	Random  bool           `json:"random"`
	Index   int            `json:"index"`
	Count   int            `json:"count"`
	Current *listitem.Item `json:"current,omitempty"`
}

type SlideshowState interface {
	Status() SlideshowStatus
}

// Pictures answers SLIDESHOW_* from the slideshow's current picture and
// LISTITEM_PICTURE_* from picture tags.
type Pictures struct {
	base
	slideshow SlideshowState
}

func NewPictures(slideshow SlideshowState) *Pictures {
	return &Pictures{slideshow: slideshow}
}

func (p *Pictures) Name() string { return "pictures" }

func (p *Pictures) Ranges() []infocode.Range {
	return []infocode.Range{infocode.RangeSlideshow, {Name: "listitem.picture", Start: infocode.ListItemPictureResolution, End: infocode.ListItemPictureISO}}
}

// slideshowToItem maps SLIDESHOW_* codes onto the item-level picture codes.
var slideshowToItem = map[infocode.Code]infocode.Code{
	infocode.SlideshowResolution:   infocode.ListItemPictureResolution,
	infocode.SlideshowFileDate:     infocode.ListItemPictureDate,
	infocode.SlideshowCameraMake:   infocode.ListItemPictureCameraMake,
	infocode.SlideshowCameraModel:  infocode.ListItemPictureCameraModel,
	infocode.SlideshowExposureTime: infocode.ListItemPictureExposureTime,
	infocode.SlideshowAperture:     infocode.ListItemPictureAperture,
	infocode.SlideshowISO:          infocode.ListItemPictureISO,
}

func (p *Pictures) status() SlideshowStatus {
	if p.slideshow == nil {
		return SlideshowStatus{}
	}
	return p.slideshow.Status()
}

func (p *Pictures) GetLabel(item *listitem.Item, q Query, _ *string) (string, bool) {
	code := q.Code()
	if infocode.RangeSlideshow.Contains(code) {
		s := p.status()
		if !s.Active {
			return "", false
		}
		switch code {
		case infocode.SlideshowIndex:
			if s.Count == 0 {
				return "", true
			}
			return fmt.Sprintf("%d/%d", s.Index+1, s.Count), true
		case infocode.SlideshowFilename:
			if s.Current == nil {
				return "", true
			}
			return s.Current.Filename(), true
		case infocode.SlideshowPath:
			if s.Current == nil {
				return "", true
			}
			return s.Current.Path, true
		}
		alias, ok := slideshowToItem[code]
		if !ok {
			return "", false
		}
		item, code = s.Current, alias
	}
	if item == nil || item.Picture == nil {
		return "", false
	}
	return pictureLabel(item.Picture, code, q.Info.Data3)
}

func pictureLabel(pic *listitem.PictureTag, code infocode.Code, format string) (string, bool) {
	switch code {
	case infocode.ListItemPictureResolution:
		if pic.Width == 0 || pic.Height == 0 {
			return "", true
		}
		return fmt.Sprintf("%d x %d", pic.Width, pic.Height), true
	case infocode.ListItemPictureDate:
		if pic.Taken.IsZero() {
			return "", true
		}
		return FormatTime(pic.Taken, format, "2006-01-02 15:04"), true
	case infocode.ListItemPictureCameraMake:
		return pic.CameraMake, true
	case infocode.ListItemPictureCameraModel:
		return pic.CameraModel, true
	case infocode.ListItemPictureExposureTime:
		return pic.ExposureTime, true
	case infocode.ListItemPictureAperture:
		if pic.Aperture == 0 {
			return "", true
		}
		return fmt.Sprintf("f/%.1f", pic.Aperture), true
	case infocode.ListItemPictureISO:
		return itoaNonZero(pic.ISO), true
	}
	return "", false
}

func (p *Pictures) GetBool(_ *listitem.Item, q Query) (bool, bool) {
	s := p.status()
	switch q.Code() {
	case infocode.SlideshowIsActive:
		return s.Active, true
	case infocode.SlideshowIsPaused:
		return s.Active && s.Paused, true
	case infocode.SlideshowIsRandom:
		return s.Active && s.Random, true
	}
	return false, false
}
