// Package listview provides a generic selectable list with a scrolling
// window, used to show one page of catalogue cards.
//
// The list only renders the entries that fit in its height, keeping the
// cursor inside the window as it moves.
package listview
