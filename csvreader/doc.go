// Package csvreader provides a streaming CSV tokenizer and a header-keyed
// record reader built on top of it.
//
// The tokenizer consumes its input one character at a time and yields one row
// per call. Fields may be quoted with double quotes; inside a quoted field a
// doubled quote ("") stands for one literal quote, and commas, carriage
// returns and line feeds are taken literally. Rows end with LF or CRLF. A bare
// CR outside a quoted field is an error.
//
// Unquoted fields are captured verbatim: leading and trailing spaces are kept.
// Whitespace between a closing quote and the next delimiter is ignored.
//
// Usage:
//
//	r, err := csvreader.Open("population.csv")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
//	for {
//		rec, err := r.NextRecord()
//		if errors.Is(err, io.EOF) {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		fmt.Println(rec["zip_code"])
//	}
//
// A Tokenizer or Reader is not safe for concurrent use.
package csvreader
