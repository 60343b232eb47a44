// Package resource standardizes how asynchronous data-access outcomes are
// observed across the SDK: every wrapped call delivers Loading immediately,
// then exactly one terminal Success or Error value, never both and never more
// than one. Transport and decoding failures become Error values; nothing
// escapes as a panic or unhandled fault.
package resource
