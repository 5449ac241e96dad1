// Package booking orchestrates room allocation against the live
// inventory.
//
// The Service is the single owner of the inventory Store: every read
// and write funnels through one mutex, so an allocation and the status
// writes that commit it form one critical section. Two concurrent Book
// calls can therefore never select overlapping rooms between the find
// and commit steps.
package booking
