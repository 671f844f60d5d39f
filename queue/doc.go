// Package queue implements a generic FIFO queue as a singly linked list
// with head and tail pointers, so Enqueue and Dequeue are both O(1).
package queue
