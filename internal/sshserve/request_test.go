package sshserve

import "testing"

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    request
		wantErr bool
	}{
		{"defaults", nil, request{kind: requestRandom, rows: 15, cols: 25}, false},
		{"run keyword", []string{"run"}, request{kind: requestRandom, rows: 15, cols: 25}, false},
		{"size", []string{"20", "30"}, request{kind: requestRandom, rows: 20, cols: 30}, false},
		{"size and seed", []string{"run", "8", "9", "42"}, request{kind: requestRandom, rows: 8, cols: 9, seed: 42}, false},
		{"out of range passes through", []string{"4", "60"}, request{kind: requestRandom, rows: 4, cols: 60}, false},
		{"level", []string{"level", "wall-gap"}, request{kind: requestLevel, levelID: "wall-gap"}, false},
		{"level without id", []string{"level"}, request{}, true},
		{"bad rows", []string{"x", "10"}, request{}, true},
		{"bad cols", []string{"10", "y"}, request{}, true},
		{"bad seed", []string{"10", "10", "-1"}, request{}, true},
		{"one number", []string{"10"}, request{}, true},
		{"too many", []string{"1", "2", "3", "4"}, request{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRequest(tt.args, 15, 25)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
