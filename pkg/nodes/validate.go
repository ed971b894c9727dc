package nodes

import (
	"errors"
	"fmt"

	"github.com/matforge/matgraph/pkg/schema"
)

// validateNode is the base validation shared by all node types: encode the
// node, submit the document to the schema collaborator, and independently
// check the subgraph for cycles. A nil validator skips the schema check but
// not cycle detection.
func validateNode(n Node, v schema.Validator) error {
	if v != nil {
		doc, err := Encode(n, Condensed)
		if err != nil {
			return err
		}
		if err := v.ValidateNodeJSON(doc); err != nil {
			return &SchemaError{Node: n, Detail: err}
		}
	}
	if offender := findCycle(n); offender != nil {
		return &CycleError{Node: offender}
	}
	return nil
}

// findCycle runs a DFS from n and returns a node that is reachable from
// itself, or nil. Only back edges count: the same instance shared by several
// parents is legal.
func findCycle(n Node) Node {
	return findCycleFrom(n, map[Node]bool{}, map[Node]bool{})
}

func findCycleFrom(n Node, onPath, done map[Node]bool) Node {
	if onPath[n] {
		return n
	}
	if done[n] {
		return nil
	}
	onPath[n] = true
	rec := n.record()
	for _, f := range recordFields(rec.Elem().Type()) {
		for _, child := range childNodes(fieldValue(rec, f)) {
			if offender := findCycleFrom(child, onPath, done); offender != nil {
				return offender
			}
		}
	}
	delete(onPath, n)
	done[n] = true
	return nil
}

func tagCriteria(tag string) map[string]any {
	return map[string]any{"node": []any{tag}}
}

// Validate extends the base schema and cycle checks with the ownership walk:
// every reachable material must be listed in the project's materials or an
// inventory, and every reachable process, data, computation, and computation
// process must be listed in an experiment. The walk stops at the first
// violation and reports it as a typed orphan error carrying the offending
// node, so callers can repair and retry.
func (p *Project) Validate(v schema.Validator) error {
	if err := validateNode(p, v); err != nil {
		return err
	}

	owned := map[Node]bool{}
	for _, m := range p.attrs.Material {
		owned[m] = true
	}
	for _, n := range FindChildren(p, tagCriteria(TagInventory), -1) {
		for _, m := range n.(*Inventory).attrs.Material {
			owned[m] = true
		}
	}
	for _, n := range FindChildren(p, tagCriteria(TagMaterial), -1) {
		if !owned[n] {
			return &OrphanedMaterialError{orphanError{Orphan: n}}
		}
	}

	experiments := make([]*Experiment, 0)
	for _, n := range FindChildren(p, tagCriteria(TagExperiment), -1) {
		experiments = append(experiments, n.(*Experiment))
	}

	owned = map[Node]bool{}
	for _, e := range experiments {
		for _, pr := range e.attrs.Process {
			owned[pr] = true
		}
	}
	for _, n := range FindChildren(p, tagCriteria(TagProcess), -1) {
		if !owned[n] {
			return &OrphanedProcessError{orphanError{Orphan: n}}
		}
	}

	owned = map[Node]bool{}
	for _, e := range experiments {
		for _, d := range e.attrs.Data {
			owned[d] = true
		}
	}
	for _, n := range FindChildren(p, tagCriteria(TagData), -1) {
		if !owned[n] {
			return &OrphanedDataError{orphanError{Orphan: n}}
		}
	}

	owned = map[Node]bool{}
	for _, e := range experiments {
		for _, c := range e.attrs.Computation {
			owned[c] = true
		}
	}
	for _, n := range FindChildren(p, tagCriteria(TagComputation), -1) {
		if !owned[n] {
			return &OrphanedComputationError{orphanError{Orphan: n}}
		}
	}

	owned = map[Node]bool{}
	for _, e := range experiments {
		for _, cp := range e.attrs.ComputationProcess {
			owned[cp] = true
		}
	}
	for _, n := range FindChildren(p, tagCriteria(TagComputationProcess), -1) {
		if !owned[n] {
			return &OrphanedComputationProcessError{orphanError{Orphan: n}}
		}
	}
	return nil
}

// AddOrphanedNodes repairs a project graph by repeatedly validating it and
// adopting each reported orphan into its owning collection: materials into
// the project's material list, processes, data, computations, and
// computation processes into the active experiment's corresponding list.
//
// The graph is validated up front and again after every repair, so a budget
// of N permits N adoptions and N+1 validations. It stops as soon as
// validation succeeds; once the budget is spent the last validation error is
// surfaced. Supplying an active experiment that is not part of the project
// graph fails immediately with ErrNotInGraph.
func AddOrphanedNodes(project *Project, active *Experiment, maxIterations int, v schema.Validator) error {
	if active != nil {
		inGraph := false
		for _, n := range FindChildren(project, tagCriteria(TagExperiment), -1) {
			if n == Node(active) {
				inGraph = true
				break
			}
		}
		if !inGraph {
			return fmt.Errorf("%w: %s", ErrNotInGraph, active)
		}
	}

	lastErr := project.Validate(v)
	for i := 0; lastErr != nil && i < maxIterations; i++ {
		var (
			material    *OrphanedMaterialError
			process     *OrphanedProcessError
			data        *OrphanedDataError
			computation *OrphanedComputationError
			compProcess *OrphanedComputationProcessError
		)
		switch {
		case errors.As(lastErr, &material):
			project.attrs.Material = append(project.attrs.Material, material.Orphan.(*Material))
		case errors.As(lastErr, &process):
			if active == nil {
				return fmt.Errorf("%w: %s", ErrNoRepairTarget, lastErr)
			}
			active.attrs.Process = append(active.attrs.Process, process.Orphan.(*Process))
		case errors.As(lastErr, &data):
			if active == nil {
				return fmt.Errorf("%w: %s", ErrNoRepairTarget, lastErr)
			}
			active.attrs.Data = append(active.attrs.Data, data.Orphan.(*Data))
		case errors.As(lastErr, &computation):
			if active == nil {
				return fmt.Errorf("%w: %s", ErrNoRepairTarget, lastErr)
			}
			active.attrs.Computation = append(active.attrs.Computation, computation.Orphan.(*Computation))
		case errors.As(lastErr, &compProcess):
			if active == nil {
				return fmt.Errorf("%w: %s", ErrNoRepairTarget, lastErr)
			}
			active.attrs.ComputationProcess = append(active.attrs.ComputationProcess, compProcess.Orphan.(*ComputationProcess))
		default:
			return lastErr
		}
		lastErr = project.Validate(v)
	}
	if lastErr == nil {
		return nil
	}
	return fmt.Errorf("orphan repair exhausted %d iterations: %w", maxIterations, lastErr)
}
