package monarch

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:    "date only format YYYY-MM-DD",
			input:   `"2025-08-30"`,
			want:    "2025-08-30",
			wantErr: false,
		},
		{
			name:    "RFC3339 format",
			input:   `"2025-08-30T15:04:05Z"`,
			want:    "2025-08-30",
			wantErr: false,
		},
		{
			name:    "datetime without timezone",
			input:   `"2025-08-30T15:04:05"`,
			want:    "2025-08-30",
			wantErr: false,
		},
		{
			name:    "null value",
			input:   `null`,
			want:    "",
			wantErr: false,
		},
		{
			name:    "empty string",
			input:   `""`,
			want:    "",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   `"not-a-date"`,
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)

			if (err != nil) != tt.wantErr {
				t.Errorf("Date.UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if err == nil {
				got := d.String()
				if got != tt.want {
					t.Errorf("Date.UnmarshalJSON() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want string
	}{
		{
			name: "normal date",
			date: Date{Time: time.Date(2025, 8, 30, 15, 30, 0, 0, time.UTC)},
			want: `"2025-08-30"`,
		},
		{
			name: "zero date",
			date: Date{Time: time.Time{}},
			want: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.date)
			if err != nil {
				t.Errorf("Date.MarshalJSON() error = %v", err)
				return
			}
			if string(got) != tt.want {
				t.Errorf("Date.MarshalJSON() = %v, want %v", string(got), tt.want)
			}
		})
	}
}

func TestTransaction_DateParsing(t *testing.T) {
	jsonData := `{
		"id": "123",
		"date": "2025-08-30",
		"amount": -50.00,
		"merchant": null,
		"account": {"id": "acc-1", "displayName": "Checking"}
	}`

	var txn Transaction
	err := json.Unmarshal([]byte(jsonData), &txn)
	if err != nil {
		t.Fatalf("Failed to unmarshal transaction: %v", err)
	}

	if txn.Date.String() != "2025-08-30" {
		t.Errorf("Transaction date = %v, want 2025-08-30", txn.Date.String())
	}

	if txn.Merchant != nil {
		t.Errorf("Transaction merchant should be nil for null value")
	}

	if txn.MerchantName() != "" || txn.CategoryName() != "" {
		t.Errorf("missing merchant and category should yield empty names")
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		wantStart string
		wantEnd   string
	}{
		{2024, time.February, "2024-02-01", "2024-02-29"},
		{2023, time.February, "2023-02-01", "2023-02-28"},
		{2024, time.April, "2024-04-01", "2024-04-30"},
		{2024, time.December, "2024-12-01", "2024-12-31"},
		{2000, time.February, "2000-02-01", "2000-02-29"},
		{1900, time.February, "1900-02-01", "1900-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.wantStart, func(t *testing.T) {
			start, end := MonthRange(tt.year, tt.month)
			if got := start.Format(DateLayout); got != tt.wantStart {
				t.Errorf("MonthRange() start = %v, want %v", got, tt.wantStart)
			}
			if got := end.Format(DateLayout); got != tt.wantEnd {
				t.Errorf("MonthRange() end = %v, want %v", got, tt.wantEnd)
			}
		})
	}
}
