package ergast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const qualifyingBody = `{"MRData":{"RaceTable":{"season":"2024","Races":[{
  "raceName":"Monaco Grand Prix",
  "QualifyingResults":[
    {"number":"16","position":"1","Driver":{"code":"LEC"},"Q1":"1:11.584","Q2":"1:10.825","Q3":"1:10.270"},
    {"number":"81","position":"2","Driver":{"code":"PIA"},"Q1":"1:11.500","Q2":"1:10.756"},
    {"number":"55","position":"3","Driver":{"code":"SAI"},"Q1":"1:11.543","Q2":"1:10.732","Q3":"1:10.518"}
  ]}]}}}`

const raceBody = `{"MRData":{"RaceTable":{"Races":[{
  "raceName":"Monaco Grand Prix",
  "Results":[
    {"number":"16","position":"1","Driver":{"code":"LEC"},"Time":{"time":"2:23:15.554"},"FastestLap":{"Time":{"time":"1:14.693"}}},
    {"number":"81","position":"2","Driver":{"code":"PIA"},"Time":{"time":"+7.152"}},
    {"number":"55","position":"3","Driver":{"code":"SAI"},"FastestLap":{"Time":{"time":"1:14.904"}}},
    {"number":"63","position":"20","Driver":{}}
  ]}]}}}`

const driverStandingsBody = `{"MRData":{"StandingsTable":{"season":"2024","StandingsLists":[{
  "season":"2024","round":"8",
  "DriverStandings":[
    {"position":"1","points":"169","wins":"4","Driver":{"code":"VER"}},
    {"position":"2","points":"138","wins":"2"}
  ]}]}}}`

const constructorStandingsBody = `{"MRData":{"StandingsTable":{"StandingsLists":[{
  "season":"2024","round":"8",
  "ConstructorStandings":[
    {"position":"1","points":"276","wins":"5","Constructor":{"name":"Red Bull"}}
  ]}]}}}`

func newServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestQualifyingResultsMissingLeafKeepsRow(t *testing.T) {
	srv := newServer(t, map[string]string{"/api/f1/current/last/qualifying.json": qualifyingBody})

	res, err := New(srv.URL+"/api/f1").QualifyingResults(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Monaco Grand Prix", res.RaceName)
	require.Len(t, res.Rows, 3)
	row := res.Rows[1]
	assert.Equal(t, "", row.Q3)
	assert.Equal(t, "2", row.Position)
	assert.Equal(t, "81", row.Number)
	assert.Equal(t, "PIA", row.Driver)
	assert.Equal(t, "1:11.500", row.Q1)
	assert.Equal(t, "1:10.756", row.Q2)
	assert.Equal(t, "1:10.518", res.Rows[2].Q3)
}

func TestQualifyingResultsMissingArray(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/current/last/qualifying.json": `{"MRData":{"RaceTable":{"Races":[{"raceName":"Monaco Grand Prix"}]}}}`,
	})

	res, err := New(srv.URL).QualifyingResults(context.Background())
	assert.ErrorIs(t, err, ErrStructure)
	assert.Nil(t, res.Rows)
}

func TestQualifyingResultsNoRaces(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/current/last/qualifying.json": `{"MRData":{"RaceTable":{"Races":[]}}}`,
	})

	_, err := New(srv.URL).QualifyingResults(context.Background())
	assert.ErrorIs(t, err, ErrStructure)
}

func TestQualifyingResultsMissingRaceName(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/current/last/qualifying.json": `{"MRData":{"RaceTable":{"Races":[{"QualifyingResults":[{"position":"1","number":"1","Driver":{"code":"VER"},"Q1":"1:30.000"}]}]}}}`,
	})

	res, err := New(srv.URL).QualifyingResults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", res.RaceName)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "VER", res.Rows[0].Driver)
}

func TestRaceResults(t *testing.T) {
	srv := newServer(t, map[string]string{"/2024/last/results.json": raceBody})

	res, err := New(srv.URL, WithSeason("2024")).RaceResults(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Monaco Grand Prix", res.RaceName)
	require.Len(t, res.Rows, 4)
	assert.Equal(t, "1:14.693", res.Rows[0].FastestLapTime)
	assert.Equal(t, "2:23:15.554", res.Rows[0].RaceTime)
	assert.Equal(t, "", res.Rows[1].FastestLapTime)
	assert.Equal(t, "+7.152", res.Rows[1].RaceTime)
	assert.Equal(t, "", res.Rows[2].RaceTime)
	assert.Equal(t, "20", res.Rows[3].Position)
	assert.Equal(t, "", res.Rows[3].Driver)
	assert.Equal(t, [3]string{"LEC", "PIA", "SAI"}, res.Podium())
}

func TestRaceResultsMissingArray(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/current/last/results.json": `{"MRData":{"RaceTable":{"Races":[{"raceName":"Monaco Grand Prix"}]}}}`,
	})

	res, err := New(srv.URL).RaceResults(context.Background())
	var pe *PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "MRData.RaceTable.Races.0.Results", pe.Path)
	assert.Nil(t, res.Rows)
}

func TestRaceResultsNonObjectRow(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/current/last/results.json": `{"MRData":{"RaceTable":{"Races":[{"raceName":"X","Results":[null,"junk",{"position":"3"}]}]}}}`,
	})

	res, err := New(srv.URL).RaceResults(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, "", res.Rows[0].Position)
	assert.Equal(t, "", res.Rows[1].Position)
	assert.Equal(t, "3", res.Rows[2].Position)
}

func TestStatusError(t *testing.T) {
	srv := newServer(t, nil)

	_, err := New(srv.URL).RaceResults(context.Background())
	assert.ErrorIs(t, err, ErrStatus)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, srv.URL+"/current/last/results.json", se.URL)
}

func TestMalformedBody(t *testing.T) {
	srv := newServer(t, map[string]string{"/current/last/results.json": `<html>`})

	_, err := New(srv.URL).RaceResults(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.NotErrorIs(t, err, ErrStructure)
	assert.NotErrorIs(t, err, ErrStatus)
}

func TestTrailingGarbageRejected(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/current/last/results.json": `{"MRData":{"RaceTable":{"Races":[{"raceName":"X","Results":[]}]}}} <html>502 Bad Gateway</html>`,
	})

	res, err := New(srv.URL).RaceResults(context.Background())
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Empty(t, res.RaceName)
}

func TestRepeatedCallsReleaseConnections(t *testing.T) {
	srv := newServer(t, map[string]string{"/current/last/results.json": raceBody})
	c := New(srv.URL)

	before := runtime.NumGoroutine()
	for i := 0; i < 50; i++ {
		_, err := c.RaceResults(context.Background())
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before+5
	}, 2*time.Second, 20*time.Millisecond, "goroutines before=%d", before)
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).QualifyingResults(context.Background())
	assert.Error(t, err)
}

func TestCancelledContext(t *testing.T) {
	srv := newServer(t, map[string]string{"/current/last/results.json": raceBody})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).RaceResults(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStandings(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/current/driverStandings.json":      driverStandingsBody,
		"/current/constructorStandings.json": constructorStandingsBody,
	})
	c := New(srv.URL)

	ds, err := c.DriverStandings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "8", ds.Round)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "VER", ds.Rows[0].Driver)
	assert.Equal(t, "", ds.Rows[1].Driver)
	assert.Equal(t, "138", ds.Rows[1].Points)

	cs, err := c.ConstructorStandings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024", cs.Season)
	require.Len(t, cs.Rows, 1)
	assert.Equal(t, "Red Bull", cs.Rows[0].Constructor)
}

func TestStandingsMissingList(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/current/driverStandings.json": `{"MRData":{"StandingsTable":{"StandingsLists":[]}}}`,
	})

	_, err := New(srv.URL).DriverStandings(context.Background())
	assert.ErrorIs(t, err, ErrStructure)
}

func TestURLs(t *testing.T) {
	c := New("")
	assert.Equal(t, "http://ergast.com/api/f1/current/last/", c.LastRaceURL())
	assert.Equal(t, "http://ergast.com/api/f1/current/", c.SeasonURL())
	assert.Equal(t, "http://x/2021/", New("http://x", WithSeason("2021")).SeasonURL())
}
