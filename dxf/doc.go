// Package dxf reads DXF (Drawing Exchange Format) files into a cadmodel.Model
// and, for test fixtures, writes them back out.
//
// Parse scans the tagged group-code/value pairs that make up a DXF file and
// walks the HEADER, TABLES, BLOCKS, and ENTITIES sections, decoding layers,
// block definitions, and entities (LINE, (LW)POLYLINE, CIRCLE, ARC, ELLIPSE,
// TEXT/MTEXT, DIMENSION, INSERT, POINT, SPLINE, HATCH, and 3DFACE) into the
// shared cadmodel types. A malformed entity does not abort the import: the
// reader resynchronizes at the next group-0 record and keeps going.
//
// The Document/Layer/Entity builder types and Writer are retained from this
// package's DXF-generation lineage and are used by this package's own tests
// to produce DXF fixtures without hand-writing group-code text.
package dxf
