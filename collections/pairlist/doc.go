// Package pairlist provides List, an ordered list of key/value pairs kept
// in two parallel slices that can be sorted by key and searched.
//
// Sort is stable, so pairs with equal keys stay in insertion order, and it
// permutes keys and values together. BinarySearch assumes the list is
// sorted and returns ^insertionPoint when the key is absent.
package pairlist
