/*
Package strlist provides an ordered, growable list of owned strings with
multiset operations.

# Overview

A List keeps its elements in insertion order and always holds at least
one spare slot past the last element. That slot is the sentinel: At
reports it, and anything past it, as absent.

	l := strlist.New("bob", "candace", "alice")
	l.Sort(strlist.Ascending)  // alice bob candace
	fmt.Println(l.Join(", ")) // alice, bob, candace

# Capacity

Capacity is counted in slots and grows in blocks of BlockSize, never
shrinking. Len() < Cap() holds after every operation.

# Multisets

Remove, RemoveAll and Diff treat the list as a multiset: duplicates are
counted. Uniq normalizes a list to its sorted, duplicate-free form.

	a := strlist.New("s1", "s2", "s2")
	b := strlist.New("s1", "s2", "s3")
	strlist.Diff(a, b) // true: the per-element counts differ

# Split

Split breaks text on a delimiter. SplitNormal keeps the empty fields
between adjacent delimiters; SplitGreedy collapses runs of delimiters:

	strlist.Split("apple--mango", -1, "-", strlist.SplitNormal) // apple, "", mango
	strlist.Split("a  b", -1, " ", strlist.SplitGreedy)         // a, b

# Thread Safety

List has no internal locking.
*/
package strlist
