// Copyright 2026 The Queryopt Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package optimizer

// noteSink is a per-planning-call append-only list of optimization
// notes. It is reset at the start of every Optimize call and copied,
// never aliased, into the resulting ExecutionPlan (spec.md §9).
type noteSink struct {
	notes []string
}

func (s *noteSink) reset() {
	s.notes = nil
}

func (s *noteSink) add(note string) {
	s.notes = append(s.notes, note)
}

// snapshot returns an independent copy of the accumulated notes, safe
// to hand to an ExecutionPlan that may outlive the next reset.
func (s *noteSink) snapshot() []string {
	out := make([]string, len(s.notes))
	copy(out, s.notes)
	return out
}
