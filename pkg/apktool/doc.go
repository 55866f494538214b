// Package apktool runs apktool, the Android package decoding and rebuilding
// tool, as a subprocess.
//
// This package contains:
//   - Option structs and pure argument builders for every apktool operation
//   - A Locator that resolves the apktool.jar artifact
//   - A Runner that executes `java -jar apktool.jar <args>` without a shell
//   - A Client tying them together, with parsers for textual output
//   - Readers for the apktool.yml metadata written into decoded directories
//
// Example usage:
//
//	client := apktool.New(apktool.WithLocator(apktool.NewLocator("/opt/apktool.jar", "")))
//	_, err := client.Decode(ctx, "app.apk", apktool.DecodeOptions{Output: "app", Force: true})
//	if err != nil {
//	    return err
//	}
package apktool
