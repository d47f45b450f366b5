package wire

import (
	"bytes"
	"encoding/json"
	"io"

	"deliverychecker/internal/core/application/usecases/commands"
	"deliverychecker/internal/core/domain/model/route"
)

// StepJSON is the wire form of one annotated waypoint.
type StepJSON struct {
	Address any     `json:"address"`
	Action  *string `json:"action"`
}

type successJSON struct {
	Status string     `json:"status"`
	Steps  []StepJSON `json:"steps"`
}

type errorJSON struct {
	Status       string `json:"status"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// NewStepsJSON converts steps to their wire form. The result is never nil.
func NewStepsJSON(steps []route.Step) []StepJSON {
	out := make([]StepJSON, 0, len(steps))
	for _, s := range steps {
		var action *string
		if s.Action() != route.None {
			name := s.Action().String()
			action = &name
		}
		out = append(out, StepJSON{Address: s.Address().Value(), Action: action})
	}
	return out
}

// ResultJSON returns the value Encode writes for result.
func ResultJSON(result commands.Result) any {
	if result.IsSuccess() {
		return successJSON{
			Status: commands.StatusSuccess,
			Steps:  NewStepsJSON(result.Steps()),
		}
	}
	return errorJSON{
		Status:       commands.StatusError,
		ErrorCode:    string(result.Code()),
		ErrorMessage: result.Message(),
	}
}

// Encode writes result as JSON followed by a newline. With indent set the
// output is indented by two spaces per level. HTML characters are not escaped.
func Encode(w io.Writer, result commands.Result, indent bool) error {
	return EncodeValue(w, ResultJSON(result), indent)
}

// EncodeValue writes any value with the same settings as Encode.
func EncodeValue(w io.Writer, v any, indent bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
