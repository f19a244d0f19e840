// Package export writes OCR results out as Office Open XML packages.
//
// A .docx or .xlsx file is a ZIP archive of XML parts, so both writers
// are built directly on archive/zip and encoding/xml with no external
// Office library. The generated packages are minimal but well-formed:
// they carry only the parts Word and Excel require to open them.
//
// Export is best effort from the caller's point of view. The writers
// themselves report errors normally; it is the ingestion pipeline that
// decides a failed export must not fail the document.
package export
