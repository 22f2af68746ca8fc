// Package qsort provides comparator-parameterized, in-place sorting for
// Go slices, centered on a family of Hoare-partitioning quicksorts.
//
// # Algorithm
//
// All quicksort variants share one partition engine and differ only in how
// they pick the pivot:
//   - Median-of-three: orders data[left], data[center] and data[right], then
//     hides the median next to the right end. The ordered ends act as scan
//     sentinels, so the partition loop carries no bound checks.
//   - First element and middle element: the chosen element is moved to the
//     right end and the partition loop bounds both cursors explicitly.
//
// Ranges of Cutoff elements or fewer are finished with insertion sort.
// Quickselect reuses the median-of-three partitioning and continues only
// into the side holding the requested rank.
//
// Every driver works on inclusive index ranges [left, right] and continues
// on [left, p-1] and [p+1, right] around the final pivot position p. The
// smaller side is handled by recursion and the larger side by iteration, so
// stack depth stays logarithmic even when the pivot choice degrades.
//
// # Comparators
//
// Algorithms take a Less function that reports whether a strictly precedes
// b. It must be a strict weak ordering; this is not checked, and a
// malformed comparator leaves the result unspecified.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-qsort/qsort"
//
//	func Process(data []int) {
//	    qsort.SortFunc(data, qsort.Descending[int])
//	}
//
//	func Median(data []float64) (float64, error) {
//	    k := (len(data) + 1) / 2
//	    if err := qsort.Select(data, k); err != nil {
//	        return 0, err
//	    }
//	    return data[k-1], nil
//	}
//
// # Stability
//
// Insertion sort and merge sort are stable. The quicksort variants, heap sort
// and shell sort are not.
//
// All functions run on the calling goroutine and never retain the slice.
package qsort
