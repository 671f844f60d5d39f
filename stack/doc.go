// Package stack implements a generic LIFO stack as a singly linked list
// rooted at the top item, so Push and Pop are both O(1).
package stack
