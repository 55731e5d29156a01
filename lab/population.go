package lab

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/mitosis/cell"
	"github.com/pthm-cable/mitosis/components"
)

// population stores the lab's cells in an ECS world. Cells are never removed.
type population struct {
	world   *ecs.World
	mapper  *ecs.Map2[components.Specimen, components.Lineage]
	filter  *ecs.Filter2[components.Specimen, components.Lineage]
	nextSeq int
}

type member struct {
	cell    cell.Entity
	lineage components.Lineage
}

func newPopulation() *population {
	world := ecs.NewWorld()
	return &population{
		world:  world,
		mapper: ecs.NewMap2[components.Specimen, components.Lineage](world),
		filter: ecs.NewFilter2[components.Specimen, components.Lineage](world),
	}
}

// add stores e and returns its lineage record.
func (p *population) add(e cell.Entity, template, parentID string, generation int) components.Lineage {
	p.nextSeq++
	sp := components.Specimen{Cell: e}
	lin := components.Lineage{
		Seq:        p.nextSeq,
		Template:   template,
		ParentID:   parentID,
		Generation: generation,
	}
	p.mapper.NewEntity(&sp, &lin)
	return lin
}

// members returns every cell in creation order.
func (p *population) members() []member {
	out := make([]member, 0, p.nextSeq)
	query := p.filter.Query()
	for query.Next() {
		sp, lin := query.Get()
		out = append(out, member{cell: sp.Cell, lineage: *lin})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].lineage.Seq < out[j].lineage.Seq
	})
	return out
}

func (p *population) len() int {
	return p.nextSeq
}
