// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package distmat

import (
	"runtime"
	"sync"
)

type nearestChanType struct {
	pos int
	id  string

	ns  [][]Neighbour
	err []error

	wg *sync.WaitGroup
}

// NearestAll returns the nearest neighbours
// of each one of the indicated samples,
// in the same order as ids.
// Use cpu to define the number of process
// used for the search.
// The default (zero) uses all available CPU.
//
// If there is an error,
// the error of the first sample in ids
// is returned.
func (m *Matrix) NearestAll(ids []string, cpu int) ([][]Neighbour, error) {
	if cpu <= 0 {
		cpu = runtime.NumCPU()
	}

	ns := make([][]Neighbour, len(ids))
	errs := make([]error, len(ids))

	nearestChan := make(chan nearestChanType, cpu*2)
	for range cpu {
		go m.runNearest(nearestChan)
	}

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		nearestChan <- nearestChanType{
			pos: i,
			id:  id,
			ns:  ns,
			err: errs,
			wg:  &wg,
		}
	}
	wg.Wait()
	close(nearestChan)

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return ns, nil
}

func (m *Matrix) runNearest(nc chan nearestChanType) {
	for c := range nc {
		c.ns[c.pos], c.err[c.pos] = m.Nearest(c.id)
		c.wg.Done()
	}
}
