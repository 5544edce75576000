// SPDX-License-Identifier: MIT

package minroots_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ulthiel/coxeter/core"
	"github.com/ulthiel/coxeter/matrix"
	"github.com/ulthiel/coxeter/minroots"
)

type typeFixture struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Param  int    `yaml:"param"`
	Roots  int    `yaml:"roots"`
	Order  int    `yaml:"order"`
	Finite bool   `yaml:"finite"`
}

func (f typeFixture) matrix() (*matrix.Coxeter, error) {
	switch f.Type {
	case "A":
		return matrix.TypeA(f.Param)
	case "B":
		return matrix.TypeB(f.Param)
	case "D":
		return matrix.TypeD(f.Param)
	case "E":
		return matrix.TypeE(f.Param)
	case "F":
		return matrix.TypeF4(), nil
	case "G":
		return matrix.TypeG2(), nil
	case "H":
		return matrix.TypeH(f.Param)
	case "I":
		return matrix.TypeI(f.Param)
	}
	return nil, fmt.Errorf("unknown type %q", f.Type)
}

func TestCatalogFixtures(t *testing.T) {
	raw, err := os.ReadFile("testdata/types.yaml")
	require.NoError(t, err)
	var fixtures []typeFixture
	require.NoError(t, yaml.Unmarshal(raw, &fixtures))
	require.NotEmpty(t, fixtures)

	for _, f := range fixtures {
		t.Run(f.Name, func(t *testing.T) {
			m, err := f.matrix()
			require.NoError(t, err)
			g, err := minroots.NewGroup(m)
			require.NoError(t, err)

			require.Equal(t, f.Roots, g.Table().Size())
			require.Equal(t, f.Finite, g.IsFinite())
			if !f.Finite {
				return
			}
			if f.Order > 2000 && testing.Short() {
				t.Skipf("enumerating %d elements", f.Order)
			}
			all, err := core.Elements(g)
			require.NoError(t, err)
			require.Len(t, all, f.Order)
		})
	}
}
