// Package response decodes OpenCNAM response bodies.
//
// The three formats carry the same information:
//
//	text: the caller name as the whole body
//	json: {"cnam": "...", "number": "..."}
//	xml:  <object><cnam>...</cnam><number>...</number></object>
//
// The XML root must have exactly two element children, cnam then number.
package response
