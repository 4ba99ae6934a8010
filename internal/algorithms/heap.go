package algorithms

// HeapSort returns a sorted copy of in using an in-place binary max-heap.
func HeapSort[T any](in []T, cmp func(a, b T) int) []T {
	out := clone(in)
	n := len(out)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(out, i, n, cmp)
	}
	for end := n - 1; end > 0; end-- {
		out[0], out[end] = out[end], out[0]
		siftDown(out, 0, end, cmp)
	}
	return out
}

func siftDown[T any](heap []T, root, size int, cmp func(a, b T) int) {
	for {
		largest := root
		left, right := 2*root+1, 2*root+2
		if left < size && cmp(heap[left], heap[largest]) > 0 {
			largest = left
		}
		if right < size && cmp(heap[right], heap[largest]) > 0 {
			largest = right
		}
		if largest == root {
			return
		}
		heap[root], heap[largest] = heap[largest], heap[root]
		root = largest
	}
}
