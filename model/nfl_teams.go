package model

import (
	"fmt"
	"strings"
)

type NFLTeam struct {
	name   string
	loc    string
	mascot string
	div    string
	alias  []string // Other codes used for the team, e.g. GB and nflverse's "GB" for GBP
	nick   []string // Any other nicknames that are used for the team, e.g. Philly for PHI
}

func (t *NFLTeam) String() string {
	return t.name
}

func (t *NFLTeam) Friendly() string {
	if t.loc == "" {
		return t.name
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

// Division is e.g. "NFC West", empty for unknown teams.
func (t *NFLTeam) Division() string {
	return t.div
}

func (t *NFLTeam) Equals(o *NFLTeam) bool {
	if o == nil {
		return false
	}
	if t == o {
		return true
	}
	return t.name == o.name && t.loc == o.loc && t.mascot == o.mascot && t.div == o.div
}

var (
	TEAM_UNK *NFLTeam = &NFLTeam{name: "UNK"}

	// NFC
	TEAM_ARI *NFLTeam = &NFLTeam{name: "ARI", loc: "Arizona", mascot: "Cardinals", div: "NFC West", nick: []string{"Cards"}}
	TEAM_ATL *NFLTeam = &NFLTeam{name: "ATL", loc: "Atlanta", mascot: "Falcons", div: "NFC South"}
	TEAM_CAR *NFLTeam = &NFLTeam{name: "CAR", loc: "Carolina", mascot: "Panthers", div: "NFC South"}
	TEAM_CHI *NFLTeam = &NFLTeam{name: "CHI", loc: "Chicago", mascot: "Bears", div: "NFC North"}
	TEAM_DAL *NFLTeam = &NFLTeam{name: "DAL", loc: "Dallas", mascot: "Cowboys", div: "NFC East"}
	TEAM_DET *NFLTeam = &NFLTeam{name: "DET", loc: "Detroit", mascot: "Lions", div: "NFC North"}
	TEAM_GBP *NFLTeam = &NFLTeam{name: "GBP", loc: "Green Bay", mascot: "Packers", div: "NFC North", alias: []string{"GB"}}
	TEAM_LAR *NFLTeam = &NFLTeam{name: "LAR", loc: "Los Angeles", mascot: "Rams", div: "NFC West", alias: []string{"LA"}}
	TEAM_MIN *NFLTeam = &NFLTeam{name: "MIN", loc: "Minnesota", mascot: "Vikings", div: "NFC North"}
	TEAM_NOS *NFLTeam = &NFLTeam{name: "NOS", loc: "New Orleans", mascot: "Saints", div: "NFC South", alias: []string{"NO"}}
	TEAM_NYG *NFLTeam = &NFLTeam{name: "NYG", loc: "New York", mascot: "Giants", div: "NFC East"}
	TEAM_PHI *NFLTeam = &NFLTeam{name: "PHI", loc: "Philadelphia", mascot: "Eagles", div: "NFC East", nick: []string{"Philly"}}
	TEAM_SFO *NFLTeam = &NFLTeam{name: "SFO", loc: "San Francisco", mascot: "49ers", div: "NFC West", alias: []string{"SF"}, nick: []string{"Niners"}}
	TEAM_SEA *NFLTeam = &NFLTeam{name: "SEA", loc: "Seattle", mascot: "Seahawks", div: "NFC West", nick: []string{"Hawks"}}
	TEAM_TBB *NFLTeam = &NFLTeam{name: "TBB", loc: "Tampa Bay", mascot: "Buccaneers", div: "NFC South", alias: []string{"TB"}, nick: []string{"Bucs"}}
	TEAM_WAS *NFLTeam = &NFLTeam{name: "WAS", loc: "Washington", mascot: "Commanders", div: "NFC East"}

	// AFC
	TEAM_BAL *NFLTeam = &NFLTeam{name: "BAL", loc: "Baltimore", mascot: "Ravens", div: "AFC North"}
	TEAM_BUF *NFLTeam = &NFLTeam{name: "BUF", loc: "Buffalo", mascot: "Bills", div: "AFC East"}
	TEAM_CIN *NFLTeam = &NFLTeam{name: "CIN", loc: "Cincinnati", mascot: "Bengals", div: "AFC North"}
	TEAM_CLE *NFLTeam = &NFLTeam{name: "CLE", loc: "Cleveland", mascot: "Browns", div: "AFC North"}
	TEAM_DEN *NFLTeam = &NFLTeam{name: "DEN", loc: "Denver", mascot: "Broncos", div: "AFC West"}
	TEAM_HOU *NFLTeam = &NFLTeam{name: "HOU", loc: "Houston", mascot: "Texans", div: "AFC South"}
	TEAM_IND *NFLTeam = &NFLTeam{name: "IND", loc: "Indianapolis", mascot: "Colts", div: "AFC South", nick: []string{"Indy"}}
	TEAM_JAC *NFLTeam = &NFLTeam{name: "JAC", loc: "Jacksonville", mascot: "Jaguars", div: "AFC South", alias: []string{"JAX"}, nick: []string{"Jags"}}
	TEAM_KCC *NFLTeam = &NFLTeam{name: "KCC", loc: "Kansas City", mascot: "Chiefs", div: "AFC West", alias: []string{"KC"}}
	TEAM_LVR *NFLTeam = &NFLTeam{name: "LVR", loc: "Las Vegas", mascot: "Raiders", div: "AFC West", alias: []string{"LV", "OAK"}}
	TEAM_LAC *NFLTeam = &NFLTeam{name: "LAC", loc: "Los Angeles", mascot: "Chargers", div: "AFC West"}
	TEAM_MIA *NFLTeam = &NFLTeam{name: "MIA", loc: "Miami", mascot: "Dolphins", div: "AFC East"}
	TEAM_NEP *NFLTeam = &NFLTeam{name: "NEP", loc: "New England", mascot: "Patriots", div: "AFC East", alias: []string{"NE"}, nick: []string{"Pats"}}
	TEAM_NYJ *NFLTeam = &NFLTeam{name: "NYJ", loc: "New York", mascot: "Jets", div: "AFC East"}
	TEAM_PIT *NFLTeam = &NFLTeam{name: "PIT", loc: "Pittsburgh", mascot: "Steelers", div: "AFC North"}
	TEAM_TEN *NFLTeam = &NFLTeam{name: "TEN", loc: "Tennessee", mascot: "Titans", div: "AFC South"}

	teamMap map[string]*NFLTeam = buildTeamMap()
)

// ParseTeam looks a team up by code, alias, city, mascot or nickname. Cities
// shared by two teams (New York, Los Angeles) resolve to whichever team is
// registered last, so datasets should use codes. Unknown names return TEAM_UNK.
func ParseTeam(name string) *NFLTeam {
	t := teamMap[strings.ToLower(strings.TrimSpace(name))]
	if t == nil {
		return TEAM_UNK
	}
	return t
}

// TeamLabel is used by the team selector: "SEA - Seattle Seahawks", or just the
// code when the team is unknown.
func TeamLabel(code string) string {
	t := ParseTeam(code)
	if t == TEAM_UNK {
		return code
	}
	return fmt.Sprintf("%s - %s", code, t.Friendly())
}

func buildTeamMap() map[string]*NFLTeam {
	teams := []*NFLTeam{
		// NFC
		TEAM_ARI, TEAM_ATL, TEAM_CAR, TEAM_CHI, TEAM_DAL, TEAM_DET, TEAM_GBP, TEAM_LAR,
		TEAM_MIN, TEAM_NOS, TEAM_NYG, TEAM_PHI, TEAM_SFO, TEAM_SEA, TEAM_TBB, TEAM_WAS,
		// AFC
		TEAM_BAL, TEAM_BUF, TEAM_CIN, TEAM_CLE, TEAM_DEN, TEAM_HOU, TEAM_IND, TEAM_JAC,
		TEAM_KCC, TEAM_LVR, TEAM_LAC, TEAM_MIA, TEAM_NEP, TEAM_NYJ, TEAM_PIT, TEAM_TEN,
	}

	m := make(map[string]*NFLTeam)
	for _, t := range teams {
		keys := []string{t.name, t.loc, t.mascot}
		keys = append(keys, t.alias...)
		keys = append(keys, t.nick...)
		for _, k := range keys {
			if k != "" {
				m[strings.ToLower(k)] = t
			}
		}
	}
	return m
}
