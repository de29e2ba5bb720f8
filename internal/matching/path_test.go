package matching

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		matched bool
		params  map[string]string
	}{
		{
			name:    "exact match",
			pattern: "/api/v1/plans",
			path:    "/api/v1/plans",
			matched: true,
		},
		{
			name:    "single param",
			pattern: "/api/v1/admin/nodes/{id}",
			path:    "/api/v1/admin/nodes/42",
			matched: true,
			params:  map[string]string{"id": "42"},
		},
		{
			name:    "param with suffix segment",
			pattern: "/api/v1/admin/nodes/{id}/kernels",
			path:    "/api/v1/admin/nodes/7/kernels",
			matched: true,
			params:  map[string]string{"id": "7"},
		},
		{
			name:    "two params",
			pattern: "/api/v1/admin/plans/{id}/billing-options/{option_id}",
			path:    "/api/v1/admin/plans/1/billing-options/3",
			matched: true,
			params:  map[string]string{"id": "1", "option_id": "3"},
		},
		{
			name:    "segment count mismatch",
			pattern: "/api/v1/admin/nodes/{id}",
			path:    "/api/v1/admin/nodes/42/kernels",
			matched: false,
		},
		{
			name:    "literal mismatch",
			pattern: "/api/v1/admin/nodes/{id}/kernels",
			path:    "/api/v1/admin/nodes/42/bindings",
			matched: false,
		},
		{
			name:    "anchored at start",
			pattern: "/v1/plans",
			path:    "/api/v1/plans",
			matched: false,
		},
		{
			name:    "param matches non-numeric segment",
			pattern: "/api/v1/admin/protocol-bindings/{id}/sync",
			path:    "/api/v1/admin/protocol-bindings/status/sync",
			matched: true,
			params:  map[string]string{"id": "status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, ok := Match(tt.pattern, tt.path)
			if ok != tt.matched {
				t.Fatalf("Match(%q, %q) = %v, want %v", tt.pattern, tt.path, ok, tt.matched)
			}
			if !tt.matched {
				return
			}
			if len(params) != len(tt.params) {
				t.Fatalf("params = %v, want %v", params, tt.params)
			}
			for k, want := range tt.params {
				if params[k] != want {
					t.Errorf("params[%q] = %q, want %q", k, params[k], want)
				}
			}
		})
	}
}

func TestParamsOrder(t *testing.T) {
	values := Params("/admin/plans/{id}/billing-options/{option_id}", "/admin/plans/9/billing-options/12")
	if len(values) != 2 || values[0] != "9" || values[1] != "12" {
		t.Fatalf("Params = %v, want [9 12]", values)
	}

	if got := Params("/admin/plans/{id}", "/admin/coupons/9"); got != nil {
		t.Errorf("Params on mismatch = %v, want nil", got)
	}
}
