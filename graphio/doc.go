// Package graphio reads segmentation problems and writes segmentation results.
//
// Input formats:
//
//   - FormatText: "vertexCount edgeCount constant" followed by edgeCount
//     triples "v1 v2 weight", all whitespace separated.
//   - FormatYAML: a document with keys vertices, constant and edges, where
//     each edge is a flow sequence [v1, v2, weight].
//   - FormatGrid: rows of whitespace-separated cell values, one row per line;
//     the constant is supplied by the caller.
//
// Output formats:
//
//   - FormatText: one component per line, member vertex ids in chain order,
//     separated by single spaces.
//   - FormatJSON / FormatYAML: the full result including confidences and
//     attach weights.
//
// WriteProblem encodes a problem back into FormatText or FormatYAML, so that
// generated or stored problems can be saved and read again unchanged.
//
// Errors:
//
//   - ErrMalformed:     a token is not an integer, a count is negative, or
//     input is left over after the declared edges.
//   - ErrTruncated:     input ends before the declared edges are read.
//   - ErrUnknownFormat: the format name is not recognized.
package graphio
