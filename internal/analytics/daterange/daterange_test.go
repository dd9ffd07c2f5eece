package daterange

import (
	"errors"
	"testing"
	"time"

	"github.com/mercura/storefront-analytics/internal/analytics/bucket"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func assertRange(t *testing.T, got Range, start, end string) {
	t.Helper()
	if !got.Start.Equal(date(start)) || !got.End.Equal(date(end)) {
		t.Fatalf("expected [%s, %s], got [%s, %s]",
			start, end,
			got.Start.Format("2006-01-02"), got.End.Format("2006-01-02"))
	}
}

func TestResolveThisMonth(t *testing.T) {
	now := date("2024-06-15")
	res, err := Resolve(Request{Preset: ThisMonth}, now)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	assertRange(t, res.Current, "2024-06-01", "2024-06-15")
	assertRange(t, res.Previous, "2024-05-01", "2024-05-15")
	if res.Granularity != bucket.Day {
		t.Fatalf("expected day granularity for 15 days, got %s", res.Granularity)
	}
}

func TestResolveLastMonth(t *testing.T) {
	now := date("2024-06-15")
	res, err := Resolve(Request{Preset: LastMonth}, now)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	assertRange(t, res.Current, "2024-05-01", "2024-05-31")
	assertRange(t, res.Previous, "2024-04-01", "2024-04-30")
	if res.Granularity != bucket.Week {
		t.Fatalf("expected week granularity for 31 days, got %s", res.Granularity)
	}
}

func TestResolveLastThreeMonths(t *testing.T) {
	now := date("2024-06-15")
	res, err := Resolve(Request{Preset: LastThreeMonths}, now)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	assertRange(t, res.Current, "2024-03-15", "2024-06-15")
	if res.Previous.Days() != res.Current.Days() {
		t.Fatalf("previous window length %d != current %d", res.Previous.Days(), res.Current.Days())
	}
	if !res.Previous.End.Equal(res.Current.Start.AddDate(0, 0, -1)) {
		t.Fatalf("previous window must end the day before current starts, got %s", res.Previous.End)
	}
	if res.Granularity != bucket.Week {
		t.Fatalf("expected week granularity for 93 days, got %s", res.Granularity)
	}
}

func TestResolveCustom(t *testing.T) {
	res, err := Resolve(Request{Preset: Custom, From: "2024-06-01", To: "2024-06-10"}, date("2024-08-01"))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	assertRange(t, res.Current, "2024-06-01", "2024-06-10")
	assertRange(t, res.Previous, "2024-05-22", "2024-05-31")
	if res.Granularity != bucket.Day {
		t.Fatalf("expected day granularity, got %s", res.Granularity)
	}
}

func TestResolveCustomLongRangeUsesMonths(t *testing.T) {
	res, err := Resolve(Request{Preset: Custom, From: "2024-01-01", To: "2024-06-30"}, date("2024-08-01"))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.Granularity != bucket.Month {
		t.Fatalf("expected month granularity for 182 days, got %s", res.Granularity)
	}
}

func TestGranularityThresholds(t *testing.T) {
	cases := []struct {
		days int
		want bucket.Granularity
	}{
		{1, bucket.Day},
		{30, bucket.Day},
		{31, bucket.Week},
		{120, bucket.Week},
		{121, bucket.Month},
	}
	for _, tc := range cases {
		if got := granularityFor(tc.days); got != tc.want {
			t.Fatalf("%d days: expected %s, got %s", tc.days, tc.want, got)
		}
	}
}

func TestResolveInvalidPreset(t *testing.T) {
	if _, err := ParsePreset("fortnight"); !errors.Is(err, ErrInvalidPreset) {
		t.Fatalf("expected ErrInvalidPreset, got %v", err)
	}
	if _, err := Resolve(Request{Preset: "fortnight"}, date("2024-06-15")); !errors.Is(err, ErrInvalidPreset) {
		t.Fatalf("expected ErrInvalidPreset, got %v", err)
	}
}

func TestResolveCustomMissingBound(t *testing.T) {
	_, err := Resolve(Request{Preset: Custom, From: "2024-06-01"}, date("2024-08-01"))
	if !errors.Is(err, ErrMissingBound) {
		t.Fatalf("expected ErrMissingBound, got %v", err)
	}
}

func TestResolveCustomInvalidDate(t *testing.T) {
	_, err := Resolve(Request{Preset: Custom, From: "June 1st", To: "2024-06-10"}, date("2024-08-01"))
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
