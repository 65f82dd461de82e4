package combat

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
)

const (
	ModeFight = "fight"
	ModePower = "power"
)

type Report struct {
	RunID     string   `json:"run_id" jsonschema:"title=Run ID,description=Random UUID identifying this simulation run"`
	Map       string   `json:"map" jsonschema:"description=Name of the map file"`
	Mode      string   `json:"mode" jsonschema:"enum=fight,enum=power"`
	Winner    string   `json:"winner" jsonschema:"enum=elf,enum=goblin,enum=none"`
	Status    string   `json:"status" jsonschema:"enum=elves_win,enum=goblins_win,enum=tie,enum=ongoing"`
	HitPoints int      `json:"hit_points" jsonschema:"description=Total hit points left to the winning side,minimum=0"`
	Rounds    int      `json:"rounds" jsonschema:"description=Fully completed rounds,minimum=0"`
	Score     int      `json:"score" jsonschema:"description=hit_points times rounds"`
	ElfPower  int      `json:"elf_power"`
	Attempts  int      `json:"attempts,omitempty" jsonschema:"description=Battles played by the power search"`
	Rules     Rules    `json:"rules"`
	Duration  float64  `json:"duration_ms"`
	Board     string   `json:"board,omitempty" jsonschema:"description=Final board as ASCII"`
	Events    []Event  `json:"events,omitempty"`
	Error     string   `json:"error,omitempty"`
	Notes     []string `json:"notes,omitempty"`
}

// NewReport describes a finished battle b.
func NewReport(name, mode string, b *Battlefield, st Outcome, elapsed time.Duration) Report {
	r := Report{
		RunID:     uuid.NewString(),
		Map:       name,
		Mode:      mode,
		Winner:    "none",
		Status:    st.Status.String(),
		HitPoints: st.HitPoints,
		Rounds:    b.Rounds(),
		ElfPower:  b.Rules().ElfPower,
		Rules:     b.Rules(),
		Duration:  float64(elapsed.Microseconds()) / 1000,
	}
	if f, ok := st.Winner(); ok {
		r.Winner = f.String()
	}
	if st.Terminal() {
		r.Score = st.Score(r.Rounds)
	}
	return r
}

func ReportSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{AllowAdditionalProperties: true, ExpandedStruct: true}
	schema := reflector.Reflect(new(Report))
	schema.Title = "Cave combat report"
	schema.Description = "Result of one combatsim run"
	return schema
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
