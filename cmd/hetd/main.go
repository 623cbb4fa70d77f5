package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/yaraku/he-tool/cmd/hetd/handlers"
	"github.com/yaraku/he-tool/pkg/auth"
	kcf "github.com/yaraku/he-tool/pkg/configs/server"
	kdb "github.com/yaraku/he-tool/pkg/db"
	kpg "github.com/yaraku/he-tool/pkg/db/postgres"
	"github.com/yaraku/he-tool/pkg/utils/echoutil"
	"github.com/yaraku/he-tool/pkg/utils/filewatch"
)

func main() {

	configPath := flag.String("config-path", "", "server config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := kcf.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	// restart on config change; the process supervisor brings it back
	// with the new file.
	{
		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
		if err != nil {
			log.Fatalf("can not watch configration: %s", err)
		}
		defer cancel()
		context.AfterFunc(ctx, func() {
			log.Println("config file is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by config update: %s", err)
			}
		})
	}

	dburi, err := conf.Database.ConnectionString()
	if err != nil {
		log.Fatalf("incomplete database configration: %s", err)
	}

	// get dbaccesor
	ctx := context.Background()
	db, err := getDBAccesor(ctx, dburi)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	policy := auth.NewTokenPolicy([]byte(conf.SigningSecret))

	api := e.Group("/api")
	{
		api.POST("/auth/login", handlers.LoginHandler(db.Users(), policy))
		api.POST("/auth/logout", handlers.LogoutHandler())
	}

	protected := api.Group("", auth.Required(policy))
	{
		protected.GET("/auth/validate", handlers.ValidateHandler())
	}

	{
		protected.GET("/users", handlers.FindUserHandler(db.Users()))
		protected.POST("/users", handlers.CreateUserHandler(db.Users()))
		protected.GET("/users/:id", handlers.GetUserHandler(db.Users()))
		protected.PUT("/users/:id", handlers.UpdateUserHandler(db.Users()))
		protected.DELETE("/users/:id", handlers.DeleteUserHandler(db.Users()))
	}

	{
		protected.GET("/documents", handlers.FindDocumentHandler(db.Documents()))
		protected.POST("/documents", handlers.CreateDocumentHandler(db.Documents()))
		protected.GET("/documents/:id", handlers.GetDocumentHandler(db.Documents()))
		protected.GET(
			"/documents/:id/bitexts",
			handlers.GetDocumentBitextsHandler(db.Documents(), db.Bitexts()),
		)
		protected.PUT("/documents/:id", handlers.UpdateDocumentHandler(db.Documents()))
		protected.DELETE("/documents/:id", handlers.DeleteDocumentHandler(db.Documents()))
	}

	{
		protected.GET("/bitexts", handlers.FindBitextHandler(db.Bitexts()))
		protected.POST("/bitexts", handlers.CreateBitextHandler(db.Bitexts(), db.Documents()))
		protected.GET("/bitexts/:id", handlers.GetBitextHandler(db.Bitexts()))
		protected.PUT("/bitexts/:id", handlers.UpdateBitextHandler(db.Bitexts(), db.Documents()))
		protected.DELETE("/bitexts/:id", handlers.DeleteBitextHandler(db.Bitexts()))
	}

	{
		protected.GET("/systems", handlers.FindSystemHandler(db.Systems()))
		protected.POST("/systems", handlers.CreateSystemHandler(db.Systems()))
		protected.GET("/systems/:id", handlers.GetSystemHandler(db.Systems()))
		protected.PUT("/systems/:id", handlers.UpdateSystemHandler(db.Systems()))
		protected.DELETE("/systems/:id", handlers.DeleteSystemHandler(db.Systems()))
	}

	{
		protected.GET("/evaluations", handlers.FindEvaluationHandler(db.Evaluations()))
		protected.POST("/evaluations", handlers.CreateEvaluationHandler(db.Evaluations()))
		protected.GET("/evaluations/:id", handlers.GetEvaluationHandler(db.Evaluations()))
		protected.GET(
			"/evaluations/:id/annotations",
			handlers.GetEvaluationAnnotationsHandler(
				db.Evaluations(), db.Annotations(), db.Bitexts(),
			),
		)
		protected.GET(
			"/evaluations/:id/results",
			handlers.GetEvaluationResultsHandler(db),
		)
		protected.PUT("/evaluations/:id", handlers.UpdateEvaluationHandler(db.Evaluations()))
		protected.DELETE("/evaluations/:id", handlers.DeleteEvaluationHandler(db.Evaluations()))
	}

	{
		refs := handlers.AnnotationReferences{
			User:       db.Users(),
			Evaluation: db.Evaluations(),
			Bitext:     db.Bitexts(),
		}
		protected.GET(
			"/annotations",
			handlers.FindAnnotationHandler(db.Annotations(), db.Evaluations(), db.Bitexts()),
		)
		protected.POST("/annotations", handlers.CreateAnnotationHandler(db.Annotations(), refs))
		protected.GET(
			"/annotations/:id",
			handlers.GetAnnotationHandler(db.Annotations(), db.Evaluations(), db.Bitexts()),
		)
		protected.PUT("/annotations/:id", handlers.UpdateAnnotationHandler(db.Annotations(), refs))
		protected.DELETE("/annotations/:id", handlers.DeleteAnnotationHandler(db.Annotations()))
	}

	{
		protected.GET(
			"/annotations/:id/systems",
			handlers.FindAnnotationSystemHandler(db.Annotations(), db.AnnotationSystems()),
		)
		protected.POST(
			"/annotations/:id/systems",
			handlers.CreateAnnotationSystemHandler(
				db.Annotations(), db.Systems(), db.AnnotationSystems(),
			),
		)
		protected.GET(
			"/annotations/:id/systems/:systemId",
			handlers.GetAnnotationSystemHandler(db.AnnotationSystems()),
		)
		protected.PUT(
			"/annotations/:id/systems/:systemId",
			handlers.UpdateAnnotationSystemHandler(db.AnnotationSystems()),
		)
		protected.DELETE(
			"/annotations/:id/systems/:systemId",
			handlers.DeleteAnnotationSystemHandler(db.AnnotationSystems()),
		)
	}

	{
		protected.GET(
			"/annotations/:id/markings",
			handlers.FindMarkingHandler(db.Annotations(), db.Markings()),
		)
		protected.POST(
			"/annotations/:id/systems/:systemId/markings",
			handlers.CreateMarkingHandler(db.Annotations(), db.Systems(), db.Markings()),
		)
		protected.GET(
			"/annotations/:id/systems/:systemId/markings/:markingId",
			handlers.GetMarkingHandler(db.Annotations(), db.Systems(), db.Markings()),
		)
		protected.PUT(
			"/annotations/:id/systems/:systemId/markings/:markingId",
			handlers.UpdateMarkingHandler(db.Annotations(), db.Systems(), db.Markings()),
		)
		protected.DELETE(
			"/annotations/:id/systems/:systemId/markings/:markingId",
			handlers.DeleteMarkingHandler(db.Annotations(), db.Systems(), db.Markings()),
		)
	}

	// the annotating frontend is a single-page app; unknown paths fall
	// back to its index.html.
	if conf.StaticRoot != "" {
		e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Root:  conf.StaticRoot,
			HTML5: true,
		}))
	}

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(":"+conf.Port, cert, key))
	} else {
		e.Logger.Fatal(e.Start(":" + conf.Port))
	}
}

func getDBAccesor(ctx context.Context, dburi string) (kdb.Database, error) {
	return kpg.New(ctx, dburi)
}
