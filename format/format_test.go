package format

import (
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

type item struct {
	Container string
	ExitCode  int
	Essential bool
}

func TestFormatTable(t *testing.T) {

	items := []interface{}{
		item{"app", 0, true},
		item{"sidecar", 137, false},
		item{"log", 1, false},
	}

	rows, err := Table(TableOpts{
		Rows:       items,
		Columns:    []string{"Container", "ExitCode"},
		ShowHeader: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"=====================",
		"CONTAINER | EXIT_CODE",
		"=====================",
		"app       | 0        ",
		"sidecar   | 137      ",
		"log       | 1        ",
	}

	for i, row := range rows {
		if row != expected[i] {
			t.Errorf("Got: '%s' Expected: '%s'", row, expected[i])
		}
	}
}

func TestFormatTableNoHeader(t *testing.T) {

	items := []interface{}{
		item{"a", 0, true},
		item{"abcd", 31, true},
		item{"abcdef", 1, false},
	}

	rows, err := Table(TableOpts{
		Rows:      items,
		Columns:   []string{"Container", "Essential"},
		Separator: " . ",
	})
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"a      . true ",
		"abcd   . true ",
		"abcdef . false",
	}

	for i, row := range rows {
		if row != expected[i] {
			t.Errorf("Got: '%s' Expected: '%s'", row, expected[i])
		}
	}
}

func TestFormatTableColors(t *testing.T) {

	color.NoColor = true
	defer func() { color.NoColor = false }()

	rows, err := Table(TableOpts{
		Rows:    []interface{}{item{"app", 0, true}, item{"job", 2, true}},
		Colors:  []*color.Color{OK, Failed},
		Columns: []string{"Container", "ExitCode"},
	})
	require.Nil(t, err)
	require.Equal(t, []string{"app | 0", "job | 2"}, rows)
}

func TestFormatTableErrors(t *testing.T) {

	_, err := Table(TableOpts{Columns: []string{"Container"}})
	require.NotNil(t, err)

	_, err = Table(TableOpts{Rows: []interface{}{item{}}})
	require.NotNil(t, err)

	_, err = Table(TableOpts{
		Rows:    []interface{}{item{}},
		Columns: []string{"Missing"},
	})
	require.Equal(t, "Item has no attribute: Missing", err.Error())
}

func TestDuration(t *testing.T) {

	start := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
	stop := start.Add(95*time.Second + 400*time.Millisecond)

	require.Equal(t, "1m35s", Duration(&start, &stop))
	require.Equal(t, "-", Duration(nil, &stop))
	require.Equal(t, "-", Duration(&start, nil))
}

func TestSnakeCase(t *testing.T) {
	require.Equal(t, "exit_code", toSnakeCase("ExitCode"))
	require.Equal(t, "task", toSnakeCase("Task"))
	require.Equal(t, "arn", toSnakeCase("ARN"))
	require.Equal(t, "task_arn", toSnakeCase("TaskARN"))
	require.Equal(t, "arn_suffix", toSnakeCase("ARNSuffix"))
}
