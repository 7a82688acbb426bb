// Package shared holds helpers used by more than one package of lemdata.
//
// The testutil subpackage provides the fixtures the test suites share:
//
//	- WriteWorkbook saves an in-memory lubricant sheet as a real .xlsx file
//	- NewTestLogger returns a logger whose records can be inspected
//
// Nothing here is imported by production code.
package shared
