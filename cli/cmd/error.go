package cmd

import "github.com/ardnew/eqscript/pkg"

var (
	ErrOpenScript  = pkg.NewError("open script")
	ErrScript      = pkg.NewError("interpret script")
	ErrJSONMarshal = pkg.NewError("marshal JSON")
	ErrYAMLMarshal = pkg.NewError("marshal YAML")
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
)
