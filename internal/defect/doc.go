// Package defect detects faults in stored category records.
//
// A record is an arbitrary JSON document. [Scan] reports whether any string
// leaf equals a term of the injected [Vocabulary]; [Extract] turns a faulty
// record into ordered [models.DefectEntry] rows using the extraction rule of
// the record's category shape. Both functions are pure and never fail:
// malformed input is simply "no defect".
package defect
