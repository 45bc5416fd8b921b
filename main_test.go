package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const testRosters = `team,position,full_name,player_id
SEA,WR,DK Metcalf,00-0035640
SEA,WR,Tyler Lockett,00-0033536
`

const testPBP = `pass_attempt,two_point_attempt,air_yards,pass_location,receiver_player_id,complete_pass,yards_gained,touchdown
1,0,5,left,00-0035640,1,6,0
1,0,7,left,00-0035640,1,9,0
1,0,3,left,00-0035640,0,0,0
1,0,14,middle,00-0033536,1,22,0
1,0,12,middle,00-0033536,1,15,1
1,0,16,middle,00-0033536,0,0,0
`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildThenReport(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, "missing.env")
	pbp := filepath.Join(dir, "pbp.csv")
	rosters := filepath.Join(dir, "rosters.csv")
	data := filepath.Join(dir, "wr_data.json")
	if err := os.WriteFile(pbp, []byte(testPBP), 0o600); err != nil {
		t.Fatalf("error writing pbp: %v", err)
	}
	if err := os.WriteFile(rosters, []byte(testRosters), 0o600); err != nil {
		t.Fatalf("error writing rosters: %v", err)
	}

	out, err := runCmd(t, "build", "--env", env, "--pbp", pbp, "--rosters", rosters, "--out", data, "--wrapped", "--min-targets", "3")
	if err != nil {
		t.Fatalf("build failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Successfully exported data for 2 players") {
		t.Errorf("unexpected build output: %s", out)
	}

	out, err = runCmd(t, "report", "--env", env, "--data", data, "--team", "SEA", "--zone", "Mid-Middle")
	if err != nil {
		t.Fatalf("report failed: %v\n%s", err, out)
	}
	for _, want := range []string{"SEA WR Corps", "Short Left: Flat, Screen, Slant", "SEA WR Corps: Mid Middle", "vs league 12.3"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output is missing '%s':\n%s", want, out)
		}
	}
}

func TestReport_requiresSelection(t *testing.T) {
	env := filepath.Join(t.TempDir(), "missing.env")
	if _, err := runCmd(t, "report", "--env", env); err == nil {
		t.Errorf("expected an error without --team or --player")
	}
}

func TestReport_missingData(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, "report", "--env", filepath.Join(dir, "missing.env"), "--data", filepath.Join(dir, "nope.json"), "--team", "SEA")
	if err == nil || !strings.Contains(err.Error(), "data unavailable") {
		t.Errorf("expected a data unavailable error, got: %v", err)
	}
}

func TestWaitTimeout(t *testing.T) {
	wg := &sync.WaitGroup{}
	if err := waitTimeout(wg, time.Second); err != nil {
		t.Errorf("nothing to wait for, got: %v", err)
	}

	wg.Add(1)
	if err := waitTimeout(wg, 10*time.Millisecond); err == nil {
		t.Errorf("expected a timeout")
	}
	wg.Done()
}
