// Package settings wires typed configuration settings into Uber's Fx.
//
// NewApp builds an Fx application whose container holds a setting.Lookup
// assembled from WithLookup and WithSource options, and a JSON *slog.Logger
// whose level comes from WithLogLevel or the "log.level" setting. Bind and
// BindGroup expose resolved settings as named values:
//
//	port := setting.New("dbms.port", setting.Int, setting.Literal("7474"))
//
//	app := settings.NewApp(
//	    settings.WithSource("", yamlparser.NewParser(), fetcher, port),
//	    settings.WithModules(
//	        settings.Module("graph", settings.Bind(port)),
//	        fx.Invoke(fx.Annotate(func(p int) { ... }, fx.ParamTags(settings.Tag(port)))),
//	    ),
//	)
package settings
