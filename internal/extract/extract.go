package extract

import (
	"context"
	"errors"
	"time"
)

// ErrExtractionParse marks model output that does not satisfy the JSON
// contract after code-fence stripping.
var ErrExtractionParse = errors.New("extraction output is not valid event JSON")

// Candidate is the untrusted structured event produced by the model. Start and
// End are ISO-8601-like strings that may lack an offset or be absent entirely;
// DurationMinutes is only consulted when End is absent.
type Candidate struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Start           string `json:"start,omitempty"`
	End             string `json:"end,omitempty"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
}

// NowContext carries the current wall-clock reference handed to the model so
// it can resolve relative dates ("tomorrow at 7").
type NowContext struct {
	Date     string
	DateTime string
	Timezone string
}

// NewNowContext builds the reference strings from now as seen in the
// configured timezone.
func NewNowContext(now time.Time, timezone string) NowContext {
	return NowContext{
		Date:     now.Format("2006-01-02"),
		DateTime: now.Format("2006-01-02T15:04:05"),
		Timezone: timezone,
	}
}

// Extractor turns free-form message text into a candidate event. The live
// implementation calls the Anthropic API; tests inject deterministic stubs.
type Extractor interface {
	Extract(ctx context.Context, messageText string, now NowContext) (*Candidate, error)
}
