// Package stylesheet provides a registry of named terminal text styles.
//
// A Stylesheet always holds a default, unstyled entry. Names that were never
// registered resolve to it, so rendering never fails:
//
//	sheet := stylesheet.New()
//	sheet.AddStyle("danger", stylesheet.Definition{
//		Transformations: []stylesheet.Transformation{stylesheet.Bold, stylesheet.Blink},
//		Foreground:      stylesheet.Red.Ptr(),
//		Background:      stylesheet.White.Ptr(),
//	})
//	sheet.Freeze()
//	sheet.Println("danger", "ALERT")
//	sheet.Println("missing", "plain text")
//
// Registering a style after Freeze is a programming error and panics with a
// *errors.MisuseError from pkg/errors.
package stylesheet
