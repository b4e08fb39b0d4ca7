package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-sweepline/pkg/logger"
	"github.com/0x0FACED/go-sweepline/pkg/voronoi"
	"github.com/0x0FACED/go-sweepline/static"
)

func main() {
	var cfgPath string

	root := &cobra.Command{
		Use:           "app",
		Short:         "Диаграммы Вороного методом заметающей прямой",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "путь к toml-конфигу")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Поднять демо-страницу с диаграммой и журналом прогона",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}

	var out string
	render := &cobra.Command{
		Use:   "render",
		Short: "Сгенерировать сайты и записать диаграмму в SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			return runRender(cfg, out)
		},
	}
	render.Flags().StringVarP(&out, "out", "o", "diagram.svg", "файл результата")

	root.AddCommand(serve, render)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}

func runServe(cfg Config) error {
	rng := rand.New(rand.NewSource(seed(cfg)))

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		reqCfg := cfg
		if r.Method == http.MethodPost {
			r.ParseForm()
			if n, err := strconv.Atoi(r.FormValue("sites")); err == nil && n > 0 {
				reqCfg.Sites = n
			}
			if l := r.FormValue("layout"); l == "random" || l == "grid" {
				reqCfg.Layout = l
			}
		}

		log := logger.New(zapcore.DebugLevel)
		sites := sitesFor(reqCfg, rng)
		diagram := voronoi.Compute(sites, reqCfg.Eps, log)
		segments := voronoi.ClipEdges(diagram, clipBox(reqCfg))

		fmt.Fprintln(w, static.Part1)
		if err := diagramToEcharts(diagram, segments).Render(w); err != nil {
			log.Error("Ошибка рендеринга диаграммы", zap.Error(err))
		}
		fmt.Fprintln(w, static.Part2)
		fmt.Fprintln(w, log.HTML())
		fmt.Fprintln(w, static.Part3)
	})

	fmt.Println("Сервер запущен на", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, nil)
}

func runRender(cfg Config, out string) error {
	rng := rand.New(rand.NewSource(seed(cfg)))

	log := logger.New(zapcore.InfoLevel)
	sites := sitesFor(cfg, rng)
	diagram := voronoi.Compute(sites, cfg.Eps, log)
	segments := voronoi.ClipEdges(diagram, clipBox(cfg))

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("создание %s: %w", out, err)
	}
	defer f.Close()

	writeSVG(f, cfg, diagram, segments)
	fmt.Printf("Записано %s: сайтов %d, вершин %d, ребер %d\n",
		out, len(diagram.Sites), len(diagram.Vertices), len(diagram.Edges))
	return nil
}

func seed(cfg Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}
