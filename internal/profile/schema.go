package profile

import "github.com/hashicorp/hcl/v2"

// fileSchema is the top-level structure of a profile file for decoding.
type fileSchema struct {
	Sets      []*setBlock      `hcl:"set,block"`
	Randoms   []*randomBlock   `hcl:"random,block"`
	Workloads []*workloadBlock `hcl:"workload,block"`
}

// setBlock holds `set` assignments. The body is left undecoded so the
// attribute names stay free-form.
type setBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// randomBlock defines one random variable and its distribution parameters.
type randomBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// workloadBlock binds the attributes of one workload component.
type workloadBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// tableRow mirrors one `{ min, max, weight }` object of a tabular
// distribution's probability table.
type tableRow struct {
	Min    float64 `cty:"min"`
	Max    float64 `cty:"max"`
	Weight float64 `cty:"weight"`
}
