// Package winnow provides a deterministic keyword-dictionary classifier
// for scraped social-media posts.
//
// Quick start:
//
//	w, err := winnow.New(winnow.WithTaxonomy("general"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rec := w.Classify("แนะนำหน่อยครับ ห้องครัวร้อนมาก")
//	fmt.Println(rec["intents"]) // [ASK_ADVICE]
//
// A Winnow instance holds an immutable taxonomy snapshot and is safe for
// concurrent use. Create once, reuse across requests.
package winnow
