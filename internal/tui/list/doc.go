// Package list provides a scrolling list component for Bubble Tea programs.
//
// Only the rows inside the viewport are rendered, so a page holding
// thousands of items costs no more to draw than one holding ten. The
// browse command uses it to show the items on the current page.
package list
