// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"

	"github.com/cpmech/vlasov/inp"

	"github.com/cpmech/gosl/chk"
)

// AllocatorType defines a function that allocates an element connecting two nodes
type AllocatorType func(n1, n2 *Node, mat *inp.Material, sec *inp.Section) (Element, error)

// New returns a new element from factory
func New(elementName string, n1, n2 *Node, mat *inp.Material, sec *inp.Section) (ele Element, err error) {
	fcn := GetAllocator(elementName)
	if fcn == nil {
		err = chk.Err("cannot get allocator for element {type=%q}. available: %v", elementName, Names())
		return
	}
	return fcn(n1, n2, mat, sec)
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// GetAllocator gets callback function to allocate an element; nil if elementName is not registered
func GetAllocator(elementName string) AllocatorType {
	return allocators[elementName]
}

// Names returns the sorted names of all registered elements
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
