// Package mode defines the editor modes and the controller that tracks the
// active one.
//
// Modes form a closed set. Normal and OperatorPending resolve multi-key
// sequences; every other mode maps single keys. The Controller records the
// current and previous mode and notifies registered callbacks after each
// switch, which is how selections and the command line follow mode changes.
package mode
