package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mww/wr_zones/controller"
	"github.com/mww/wr_zones/model"
	"github.com/mww/wr_zones/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSelection(t *testing.T, sel model.Selection) string {
	t.Helper()
	ctrl := controller.NewFromDataset(testutils.Dataset(), nil, nil)
	d, err := ctrl.Dashboard(context.Background(), sel)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d))
	return buf.String()
}

func TestRender_team(t *testing.T) {
	out := renderSelection(t, model.Selection{Team: "SEA"})

	assert.Contains(t, out, "SEA WR Corps")
	assert.Contains(t, out, "SEA - Seattle Seahawks, NFC West")
	assert.Contains(t, out, "Targets 29  Rec 20  Yds 310  TD 3  Catch 69.0%  YPC 15.5")
	assert.Contains(t, out, "1. Mid Middle: Post, Crosser, Seam")
	assert.Contains(t, out, "2. Deep Left: Go, Fade, Deep Post")
	assert.Contains(t, out, "3. Deep Right: Go, Fade, Comeback")
	assert.Contains(t, out, "8/11 72.7%")

	// deep zones are drawn above short ones
	deep := strings.Index(out, "Deep Middle")
	short := strings.Index(out, "Short Middle")
	require.True(t, deep >= 0 && short >= 0)
	assert.Less(t, deep, short)
	assert.Less(t, short, strings.Index(out, "line of scrimmage"))
}

func TestRender_notice(t *testing.T) {
	out := renderSelection(t, model.Selection{PlayerID: testutils.IDLockett})
	assert.Contains(t, out, "Tyler Lockett")
	assert.Contains(t, out, "Insufficient data for specific recommendations.")
}

func TestRender_detail(t *testing.T) {
	out := renderSelection(t, model.Selection{Team: "SEA", PlayerID: testutils.IDMetcalf, Zone: "Mid-Middle"})

	assert.Contains(t, out, "DK Metcalf: Mid Middle")
	assert.Contains(t, out, "4/6 for 70 yds, 1 TD")
	assert.Contains(t, out, "YPT 11.7 vs league 9.5")
	assert.Contains(t, out, "(+2.2)")
	assert.Contains(t, out, "Best teammate: Jaxon Smith-Njigba, 10.0 YPT on 3 targets vs Team avg 12.7")
	assert.Contains(t, out, "(-2.7)")
}

func TestRender_halfwayRoundsUp(t *testing.T) {
	// Short Left is 25 yards on 4 targets
	out := renderSelection(t, model.Selection{PlayerID: testutils.IDMetcalf})
	assert.Contains(t, out, "25 yds 6.3 ypt")
	assert.NotContains(t, out, "6.2 ypt")
}

func TestRender_detailNoLeague(t *testing.T) {
	out := renderSelection(t, model.Selection{PlayerID: testutils.IDLockett, Zone: "Short-Right"})
	assert.Contains(t, out, "No targets in this zone.")
	assert.Contains(t, out, "YPT 0.0 (no league average)")
	assert.NotContains(t, out, "Best teammate")
}

func TestRender_hidden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, &model.Dashboard{}))
	assert.Contains(t, buf.String(), "Select a team or a player")

	buf.Reset()
	require.NoError(t, Render(&buf, nil))
	assert.Contains(t, buf.String(), "Select a team or a player")
}
