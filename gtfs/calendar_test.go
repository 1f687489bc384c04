package gtfs

import (
	"errors"
	"strings"
	"testing"
)

func mustDate(t *testing.T, s string) ServiceDate {
	t.Helper()
	d, err := ParseServiceDate(s)
	if err != nil {
		t.Fatalf("ParseServiceDate(%q): %v", s, err)
	}
	return d
}

const mondayCalendar = `service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date
S1,1,0,0,0,0,0,0,20240101,20241231
`

func TestActiveServices_WeeklyRule(t *testing.T) {
	// 2024-06-03 is a Monday.
	set, err := ActiveServices(mondayCalendar, true, "", false, mustDate(t, "2024-06-03"))
	if err != nil {
		t.Fatalf("ActiveServices: %v", err)
	}
	if len(set) != 1 || !set.Contains("S1") {
		t.Errorf("want {S1}, got %v", set)
	}
}

func TestActiveServices_WeekdayAndRangeChecks(t *testing.T) {
	tests := []struct {
		name     string
		calendar string
		date     string
		want     bool
	}{
		{
			name:     "weekday flag zero excludes",
			calendar: mondayCalendar,
			date:     "2024-06-04", // Tuesday
			want:     false,
		},
		{
			name:     "date before range excludes",
			calendar: mondayCalendar,
			date:     "2023-12-25", // a Monday before start_date
			want:     false,
		},
		{
			name:     "date after range excludes",
			calendar: mondayCalendar,
			date:     "2025-01-06", // a Monday after end_date
			want:     false,
		},
		{
			name:     "range boundaries are inclusive",
			calendar: "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\nS1,1,0,0,0,0,0,0,20240603,20240603\n",
			date:     "2024-06-03",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ActiveServices(tt.calendar, true, "", false, mustDate(t, tt.date))
			if tt.want {
				if err != nil {
					t.Fatalf("ActiveServices: %v", err)
				}
				if !set.Contains("S1") {
					t.Errorf("S1 should be active, got %v", set)
				}
				return
			}
			var nas *NoActiveServiceError
			if !errors.As(err, &nas) {
				t.Fatalf("want NoActiveServiceError, got set=%v err=%v", set, err)
			}
		})
	}
}

func TestActiveServices_ExceptionRemovesService(t *testing.T) {
	exceptions := "service_id,date,exception_type\nS1,20240603,2\n"
	_, err := ActiveServices(mondayCalendar, true, exceptions, true, mustDate(t, "2024-06-03"))

	var nas *NoActiveServiceError
	if !errors.As(err, &nas) {
		t.Fatalf("want NoActiveServiceError, got %v", err)
	}
	if nas.Date != "03/06/2024" {
		t.Errorf("error should carry display date, got %q", nas.Date)
	}
	if !strings.Contains(nas.Error(), "03/06/2024") {
		t.Errorf("message should embed the date: %q", nas.Error())
	}
}

func TestActiveServices_ExceptionAddsUnruledService(t *testing.T) {
	// S2 appears in no weekly rule; a type-1 exception still activates it.
	exceptions := "service_id,date,exception_type\nS2,20240603,1\n"
	set, err := ActiveServices(mondayCalendar, true, exceptions, true, mustDate(t, "2024-06-03"))
	if err != nil {
		t.Fatalf("ActiveServices: %v", err)
	}
	for _, id := range []string{"S1", "S2"} {
		if !set.Contains(id) {
			t.Errorf("%s should be active, got %v", id, set)
		}
	}
}

func TestActiveServices_ExceptionsIdempotent(t *testing.T) {
	tests := []struct {
		name       string
		exceptions string
		wantS1     bool
	}{
		{
			name:       "double add equals single add",
			exceptions: "service_id,date,exception_type\nS1,20240603,1\nS1,20240603,1\n",
			wantS1:     true,
		},
		{
			name:       "remove of absent service is a no-op",
			exceptions: "service_id,date,exception_type\nS9,20240603,2\nS9,20240603,2\nS1,20240603,1\n",
			wantS1:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ActiveServices("", false, tt.exceptions, true, mustDate(t, "2024-06-03"))
			if err != nil {
				t.Fatalf("ActiveServices: %v", err)
			}
			if set.Contains("S1") != tt.wantS1 {
				t.Errorf("S1 active=%v, want %v (set %v)", set.Contains("S1"), tt.wantS1, set)
			}
			if len(set) != 1 {
				t.Errorf("want exactly one active service, got %v", set)
			}
		})
	}
}

func TestActiveServices_ExceptionWinsOverRuleOrder(t *testing.T) {
	// Calendar grants S1 and S2; the exception removing S1 must apply after
	// the whole base pass regardless of row order in either file.
	calendar := "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n" +
		"S2,1,0,0,0,0,0,0,20240101,20241231\n" +
		"S1,1,0,0,0,0,0,0,20240101,20241231\n"
	exceptions := "service_id,date,exception_type\nS1,20240603,2\nS1,20240610,1\n"

	set, err := ActiveServices(calendar, true, exceptions, true, mustDate(t, "2024-06-03"))
	if err != nil {
		t.Fatalf("ActiveServices: %v", err)
	}
	if set.Contains("S1") {
		t.Error("S1 was removed by exception and should not be active")
	}
	if !set.Contains("S2") {
		t.Error("S2 should still be active")
	}
}

func TestActiveServices_ExceptionOtherDateIgnored(t *testing.T) {
	exceptions := "service_id,date,exception_type\nS1,20240610,2\n"
	set, err := ActiveServices(mondayCalendar, true, exceptions, true, mustDate(t, "2024-06-03"))
	if err != nil {
		t.Fatalf("ActiveServices: %v", err)
	}
	if !set.Contains("S1") {
		t.Error("exception for another date must not affect the target date")
	}
}

func TestActiveServices_MissingColumnTreatedAsAbsent(t *testing.T) {
	// calendar.txt without end_date contributes nothing, but the exception
	// file still activates S3. No error: optional sources are tolerant.
	broken := "service_id,monday,start_date\nS1,1,20240101\n"
	exceptions := "service_id,date,exception_type\nS3,20240603,1\n"

	set, err := ActiveServices(broken, true, exceptions, true, mustDate(t, "2024-06-03"))
	if err != nil {
		t.Fatalf("ActiveServices: %v", err)
	}
	if set.Contains("S1") {
		t.Error("rows from a malformed calendar header must be skipped")
	}
	if !set.Contains("S3") {
		t.Error("S3 should be active via exception")
	}
}

func TestActiveServices_BothAbsent(t *testing.T) {
	_, err := ActiveServices("", false, "", false, mustDate(t, "2024-06-03"))
	var nas *NoActiveServiceError
	if !errors.As(err, &nas) {
		t.Fatalf("want NoActiveServiceError, got %v", err)
	}
}

func TestActiveServices_SkipsBlankLines(t *testing.T) {
	calendar := "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n\n  \nS1,1,0,0,0,0,0,0,20240101,20241231\n\n"
	set, err := ActiveServices(calendar, true, "", false, mustDate(t, "2024-06-03"))
	if err != nil {
		t.Fatalf("ActiveServices: %v", err)
	}
	if !set.Contains("S1") {
		t.Errorf("want S1 active, got %v", set)
	}
}
