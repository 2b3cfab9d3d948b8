package check

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/zjrosen/osgdb/internal/domain/vocabulary"
)

func TestReport_CountAndFilter(t *testing.T) {
	r := Report{Records: 2, Findings: []Finding{
		{Severity: SeverityWarning, Kind: domain.KindEntry, Record: "A", Message: "w"},
		{Severity: SeverityError, Kind: domain.KindEntry, Record: "A", Field: "Home", Message: "e"},
		{Severity: SeverityWarning, Kind: domain.KindDeveloper, Record: "B", Message: "w2"},
	}}

	require.True(t, r.HasErrors())
	require.Equal(t, 1, r.Count(SeverityError))
	require.Equal(t, 2, r.Count(SeverityWarning))
	require.Len(t, r.Filter(SeverityWarning), 2)
	require.False(t, Report{}.HasErrors())
}

func TestFinding_String(t *testing.T) {
	f := Finding{Severity: SeverityError, Kind: domain.KindEntry, Record: "Example", Field: "Home", Message: "invalid URL"}
	require.Equal(t, `error: entry "Example": Home: invalid URL`, f.String())

	f.Field = ""
	require.Equal(t, `error: entry "Example": invalid URL`, f.String())
}

func TestFinding_JSON(t *testing.T) {
	data, err := json.Marshal(Finding{Severity: SeverityWarning, Kind: domain.KindInspiration, Record: "X", Message: "m"})
	require.NoError(t, err)
	require.JSONEq(t, `{"severity":"warning","kind":"inspiration","record":"X","message":"m"}`, string(data))
}

func TestFinding_JSONRoundTrip(t *testing.T) {
	want := Finding{Severity: SeverityError, Kind: domain.KindEntry, Record: "X", Field: "Home", Message: "invalid URL"}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	var got Finding
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, want, got)

	err = json.Unmarshal([]byte(`{"severity":"fatal"}`), &got)
	require.ErrorContains(t, err, "unknown severity")
}
