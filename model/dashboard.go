package model

type HeatBand string

const (
	BAND_NEUTRAL HeatBand = "neutral"
	BAND_RED     HeatBand = "red"
	BAND_YELLOW  HeatBand = "yellow"
	BAND_GREEN   HeatBand = "green"
)

// ZoneCell is one square of the heatmap.
type ZoneCell struct {
	Key     ZoneKey `json:"-"`
	Zone    string  `json:"zone"`
	Label   string  `json:"label"`
	HasData bool    `json:"has_data"`
	Stats   Stats   `json:"stats"`

	CatchRate    float64 `json:"catch_rate"`
	YPT          float64 `json:"ypt"`
	CappedYPT    float64 `json:"capped_ypt"`
	TDsPerTarget float64 `json:"tds_per_target"`
	RecShare     float64 `json:"rec_share"`

	Score   float64  `json:"score"`
	Band    HeatBand `json:"band"`
	Opacity string   `json:"opacity"`
	Color   string   `json:"color"`
}

type RouteRecommendation struct {
	Zone   string   `json:"zone"`
	Routes []string `json:"routes"`
	Score  float64  `json:"score"`
}

// DiffColor classifies a yards-per-target difference for display.
type DiffColor string

const (
	DIFF_NEUTRAL DiffColor = "neutral"
	DIFF_RED     DiffColor = "red"
	DIFF_YELLOW  DiffColor = "yellow"
	DIFF_GREEN   DiffColor = "green"
)

type TeammateComparison struct {
	PlayerID     string    `json:"player_id"`
	Name         string    `json:"name"`
	Targets      int       `json:"targets"`
	YPT          float64   `json:"ypt"`
	BaselineName string    `json:"baseline_name"`
	HasBaseline  bool      `json:"has_baseline"`
	BaselineYPT  float64   `json:"baseline_ypt"`
	Diff         float64   `json:"diff"`
	DiffColor    DiffColor `json:"diff_color"`
}

// ZoneComparison is the detail shown when a single zone is selected.
type ZoneComparison struct {
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name"`
	IsTeam     bool      `json:"is_team"`
	Zone       string    `json:"zone"`
	Label      string    `json:"label"`
	HasData    bool      `json:"has_data"`
	Stats      Stats     `json:"stats"`
	YPT        float64   `json:"ypt"`
	HasLeague  bool      `json:"has_league"`
	LeagueYPT  float64   `json:"league_ypt"`
	Diff       float64   `json:"diff"`
	DiffColor  DiffColor `json:"diff_color"`

	BestTeammate *TeammateComparison `json:"best_teammate,omitempty"`
}

// Selection is the state of the selectors on the dashboard.
type Selection struct {
	Team     string
	PlayerID string
	Zone     string
}

const TeamAll = "all"

func (s Selection) AllTeams() bool {
	return s.Team == "" || s.Team == TeamAll
}

type Dashboard struct {
	Visible   bool    `json:"visible"`
	Entity    *Player `json:"entity,omitempty"`
	IsTeam    bool    `json:"is_team"`
	CatchRate string  `json:"catch_rate"`
	YPC       string  `json:"ypc"`

	// Rows are in display order, deep zones first.
	Rows   [][]ZoneCell          `json:"rows"`
	Routes []RouteRecommendation `json:"routes"`
	Notice string                `json:"notice,omitempty"`

	Detail *ZoneComparison `json:"detail,omitempty"`
}
