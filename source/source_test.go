package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"leaderboard/attendance"
	"leaderboard/define"
)

const sampleJSON = `{
	"freshmen":   {"tapped_in": 250, "total_students": 500},
	"sophomores": {"tapped_in": 0, "total_students": 0},
	"juniors":    75.5,
	"seniors":    {"tapped_in": 480, "total_students": 480}
}`

func TestDecodeMixedShapes(t *testing.T) {
	v, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	assert.Equal(t, attendance.Values{
		attendance.Freshmen:   50,
		attendance.Sophomores: 0,
		attendance.Juniors:    75.5,
		attendance.Seniors:    100,
	}, v)
}

func TestDecodeMissingClassesDefaultToZero(t *testing.T) {
	v, err := Decode(strings.NewReader(`{"juniors": 12}`))
	require.NoError(t, err)
	assert.Len(t, v, 4)
	assert.Equal(t, 12.0, v[attendance.Juniors])
	assert.Zero(t, v[attendance.Freshmen])
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader(`not json`))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`{"freshmen": "lots"}`))
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	v, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50.0, v[attendance.Freshmen])
}

func TestRefreshMissingFileFallsBackToZero(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.json"))
	_, err := src.Fetch(context.Background())
	require.Error(t, err)

	assert.Equal(t, attendance.Zero(), Refresh(context.Background(), src))
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	v, err := NewHTTPSource(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100.0, v[attendance.Seniors])
}

func TestHTTPSourceErrorStatusFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL)
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, attendance.Zero(), Refresh(context.Background(), src))
}

func TestHTTPSourceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	assert.Equal(t, attendance.Zero(), Refresh(context.Background(), NewHTTPSource(url)))
}

type fakeHashes struct {
	data map[string]map[string]string
	err  error
}

func (f *fakeHashes) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	if f.err != nil {
		return redis.NewMapStringStringResult(nil, f.err)
	}
	h, ok := f.data[key]
	if !ok {
		h = map[string]string{}
	}
	return redis.NewMapStringStringResult(h, nil)
}

func TestRedisSource(t *testing.T) {
	client := &fakeHashes{data: map[string]map[string]string{
		"attendance:freshmen":   {"tapped_in": "125", "total_students": "500"},
		"attendance:sophomores": {"percentage": "88.5"},
		"attendance:seniors":    {"tapped_in": "10"},
	}}

	v, err := NewRedisSource(client, "").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25.0, v[attendance.Freshmen])
	assert.Equal(t, 88.5, v[attendance.Sophomores])
	assert.Zero(t, v[attendance.Juniors])
	assert.Zero(t, v[attendance.Seniors])
}

func TestRedisSourceBadField(t *testing.T) {
	client := &fakeHashes{data: map[string]map[string]string{
		"lb:juniors": {"tapped_in": "many", "total_students": "10"},
	}}
	_, err := NewRedisSource(client, "lb:").Fetch(context.Background())
	assert.Error(t, err)
}

func TestRedisSourceErrorFallsBack(t *testing.T) {
	src := NewRedisSource(&fakeHashes{err: errors.New("connection refused")}, "")
	assert.Equal(t, attendance.Zero(), Refresh(context.Background(), src))
}

func writeSheet(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestSheetSource(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"class", "tapped_in", "total_students"},
		{"freshmen", 100, 400},
		{"SPHS", 300, 300},
		{"teachers", 5, 10},
	})

	v, err := NewSheetSource(path, "").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25.0, v[attendance.Freshmen])
	assert.Equal(t, 100.0, v[attendance.Sophomores])
	assert.Zero(t, v[attendance.Juniors])
}

func TestSheetSourceMissingFile(t *testing.T) {
	src := NewSheetSource(filepath.Join(t.TempDir(), "none.xlsx"), "")
	_, err := src.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFactory(t *testing.T) {
	assert.Equal(t, []string{"demo", "file", "http", "redis", "sheet"}, GetSupportedKinds())

	src, err := New(&define.Config{Source: "file", DataPath: "/data.json"})
	require.NoError(t, err)
	assert.Equal(t, "file:/data.json", src.Name())

	src, err = New(&define.Config{Source: "demo"})
	require.NoError(t, err)
	assert.True(t, IsDemo(src))

	_, err = New(&define.Config{Source: "http"})
	assert.Error(t, err)

	_, err = New(&define.Config{Source: "carrier-pigeon"})
	assert.Error(t, err)
}
