package session

import (
	"encoding/json"
	"fmt"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
)

// Action is one user-triggered step. The concrete types below are the only
// implementations.
type Action interface {
	Type() string
	isAction()
}

// Fetch loads article text from URL.
type Fetch struct {
	URL string `json:"url"`
}

// Summarize summarizes the loaded article under Category.
type Summarize struct {
	Category string `json:"category"`
}

// Edit replaces the editable summary buffer.
type Edit struct {
	Text string `json:"text"`
}

// SetAnchors overrides the session's intro and closing lines.
type SetAnchors struct {
	Intro   string `json:"intro"`
	Closing string `json:"closing"`
}

// Save commits the editable summary to history.
type Save struct{}

// Listen synthesizes the current editable summary with the anchor lines.
type Listen struct{}

// SynthesizeAll synthesizes the whole history as one broadcast.
type SynthesizeAll struct{}

// Export writes history to the export path. Empty Format uses the default.
type Export struct {
	Format string `json:"format"`
}

func (Fetch) Type() string         { return "fetch" }
func (Summarize) Type() string     { return "summarize" }
func (Edit) Type() string          { return "edit" }
func (SetAnchors) Type() string    { return "set_anchors" }
func (Save) Type() string          { return "save" }
func (Listen) Type() string        { return "listen" }
func (SynthesizeAll) Type() string { return "synthesize_all" }
func (Export) Type() string        { return "export" }

func (Fetch) isAction()         {}
func (Summarize) isAction()     {}
func (Edit) isAction()          {}
func (SetAnchors) isAction()    {}
func (Save) isAction()          {}
func (Listen) isAction()        {}
func (SynthesizeAll) isAction() {}
func (Export) isAction()        {}

// DecodeAction parses a {"type": ..., ...} payload into its Action variant.
func DecodeAction(data []byte) (Action, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, apperr.InvalidAction("decode action", err)
	}

	var a Action
	switch head.Type {
	case "fetch":
		var v Fetch
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, apperr.InvalidAction("decode fetch", err)
		}
		a = v
	case "summarize":
		var v Summarize
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, apperr.InvalidAction("decode summarize", err)
		}
		a = v
	case "edit":
		var v Edit
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, apperr.InvalidAction("decode edit", err)
		}
		a = v
	case "set_anchors":
		var v SetAnchors
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, apperr.InvalidAction("decode set_anchors", err)
		}
		a = v
	case "save":
		a = Save{}
	case "listen":
		a = Listen{}
	case "synthesize_all":
		a = SynthesizeAll{}
	case "export":
		var v Export
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, apperr.InvalidAction("decode export", err)
		}
		a = v
	default:
		return nil, apperr.InvalidAction("decode action", fmt.Errorf("unknown action type %q", head.Type))
	}
	return a, nil
}
