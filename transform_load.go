package formlang

func init() {
	registerReduce(LoadHook, reduceLoad)
}

// reduceLoad handles `(load "./path")`: resolves the import path
// against ctx.CurrentPath via ctx.Loader, parses the loaded unit with
// ctx.ParseUnit (wired in by the driver, since scanning/parsing are
// out of scope here), and reduces the result in layer — splicing a
// loaded unit into the tree exactly where its `load` form appeared.
func reduceLoad(ctx *Context, operands *Term, layer *Layer, at CharCount) *Term {
	pathTerm := operands.Car()
	if pathTerm.Tag() != TagString {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicUnexpectedType, Message: "load expects a string path", At: at})
		return skipTerm(ctx)
	}
	if ctx.Loader == nil || ctx.ParseUnit == nil {
		Halt(MnemonicCompilationHalted, "load: no SourceLoader/ParseUnit wired on Context")
	}
	path, err := ctx.Loader.GetPath(pathTerm.StringValue(), ctx.CurrentPath)
	if err != nil {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicUnexpectedType, Message: err.Error(), At: at})
		return skipTerm(ctx)
	}
	content, err := ctx.Loader.GetContent(path)
	if err != nil {
		ctx.Places.Record(ObjectError{Mnemonic: MnemonicUnexpectedType, Message: err.Error(), At: at})
		return skipTerm(ctx)
	}
	file := ctx.Sources.AddFile(path, content)

	prevPath := ctx.CurrentPath
	ctx.CurrentPath = path
	defer func() { ctx.CurrentPath = prevPath }()

	unit := ctx.ParseUnit(ctx, content, file)
	return Reduce(ctx, unit, layer)
}
