// Copyright ©2024 The adrt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adrt

// passConfig describes the section/angle geometry of the butterfly
// buffer before and after one pass, per spec.md §3's invariant
// "section_count * angle_in_section = N at all times". StrideView of
// spec.md §9: recomputed once per pass rather than encoded in a fixed
// nested type.
type passConfig struct {
	sectionCountBefore int // sections in prev, entering this pass
	angleStrideBefore  int // width of one section in prev
	sectionCountAfter  int // sections in curr, leaving this pass
	angleStrideAfter   int // width of one section in curr
}

// passConfigs returns the sequence of pass configurations for an image
// of side n, one entry per pass from 1 to NumIters(n). Inverse and
// BackProject walk this sequence in order; Forward walks it in reverse
// (reversedPassConfigs).
func passConfigs(n int) []passConfig {
	iters := NumIters(n)
	cfgs := make([]passConfig, iters)
	sectionCount, angleStride := 1, n
	for i := 0; i < iters; i++ {
		next := floorDiv2(angleStride)
		cfgs[i] = passConfig{
			sectionCountBefore: sectionCount,
			angleStrideBefore:  angleStride,
			sectionCountAfter:  2 * sectionCount,
			angleStrideAfter:   next,
		}
		sectionCount *= 2
		angleStride = next
	}
	return cfgs
}
