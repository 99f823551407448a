package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/bytearena/dogfight/common/assert"
	"github.com/bytearena/dogfight/common/influxdb"
	"github.com/bytearena/dogfight/common/recording"
	"github.com/bytearena/dogfight/common/replay"
	"github.com/bytearena/dogfight/common/utils"
	"github.com/bytearena/dogfight/config"
)

const metricsPeriod = 1 * time.Second

func main() {
	app := makeapp()
	app.Run(os.Args)
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Description = "Dogfight combat core"
	app.Name = "dogfight"
	app.Version = utils.GetVersion()

	app.Commands = []cli.Command{
		{
			Name:    "simulate",
			Aliases: []string{"s"},
			Usage:   "Run a headless scripted skirmish",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "config", Value: "", Usage: "JSON combat configuration; defaults are used when empty"},
				cli.IntFlag{Name: "viz-every", Value: 0, Usage: "Print a visualisation frame every N ticks (0 disables frames)"},
				cli.BoolFlag{Name: "realtime", Usage: "Pace the simulation on the wall clock"},
				cli.BoolFlag{Name: "metrics", Usage: "Report counters to InfluxDB (INFLUXDB_ADDR, INFLUXDB_DB)"},
				cli.StringFlag{Name: "record-file", Value: "", Usage: "Destination archive for recording every frame of the game"},
			},
			Action: func(c *cli.Context) error {
				configPath := c.String("config")
				vizEvery := c.Int("viz-every")
				realtime := c.Bool("realtime")
				metrics := c.Bool("metrics")
				recordFile := c.String("record-file")
				simulateAction(configPath, vizEvery, realtime, metrics, recordFile)
				return nil
			},
		},
		{
			Name:  "replay",
			Usage: "Print the frames of a recorded game",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "file", Value: "", Usage: "Record archive; required"},
				cli.IntFlag{Name: "every", Value: 1, Usage: "Print one frame every N frames"},
			},
			Action: func(c *cli.Context) error {
				replayAction(c.String("file"), c.Int("every"))
				return nil
			},
		},
		{
			Name:  "config",
			Usage: "Print the effective combat configuration",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "config", Value: "", Usage: "JSON combat configuration; defaults are used when empty"},
			},
			Action: func(c *cli.Context) error {
				conf := loadConfigOrFail(c.String("config"))
				printConfig(conf)
				return nil
			},
		},
	}

	return app
}

func loadConfigOrFail(configPath string) config.CombatConfig {
	if configPath == "" {
		return config.DefaultCombatConfig()
	}

	conf, err := config.LoadCombatConfig(configPath)
	if err != nil {
		berror := bettererrors.
			New("Could not load combat configuration").
			SetContext("path", configPath).
			With(bettererrors.NewFromErr(err))

		utils.FailWith(berror)
	}

	utils.DebugWithContext("config", "Combat configuration loaded", utils.Context{
		"path": configPath,
	})

	return conf
}

func simulateAction(configPath string, vizEvery int, realtime bool, metrics bool, recordFile string) {
	conf := loadConfigOrFail(configPath)
	skirmish := newSkirmish(conf)

	var recorder recording.Recorder = recording.MakeEmptyRecorder()
	if recordFile != "" {
		recorder = recording.MakeSingleGameRecorder(recordFile)
	}

	gameID := skirmish.game.GetID()
	if err := recorder.RecordMetadata(gameID, conf); err != nil {
		utils.FailWith(bettererrors.New("Could not record metadata").With(bettererrors.NewFromErr(err)))
	}

	if metrics {
		metricsClient, err := influxdb.NewClientFromEnv("dogfight", metricsPeriod)
		if err != nil {
			utils.FailWith(bettererrors.
				New("Could not create the metrics client").
				With(bettererrors.NewFromErr(err)),
			)
		}

		metricsClient.Loop(func() {
			reportStats(metricsClient, skirmish)
		})

		defer func() {
			reportStats(metricsClient, skirmish)
			metricsClient.TearDown()
		}()
	}

	log.Println("Dogfight " + utils.GetVersion() + " game#" + skirmish.game.GetID())

	var ticker *time.Ticker
	if realtime {
		ticker = time.NewTicker(conf.GetTickDuration())
		defer ticker.Stop()
	}

	for !skirmish.IsOver() {
		if ticker != nil {
			<-ticker.C
		}

		skirmish.Step()

		frame := string(skirmish.game.GetVizFrameJson())
		recorder.Record(gameID, frame)

		if vizEvery > 0 && int(skirmish.turn.GetSeq())%vizEvery == 0 {
			log.Println(frame)
		}
	}

	if err := recorder.Close(gameID); err != nil {
		utils.FailWith(bettererrors.
			New("Could not write the record archive").
			SetContext("file", recordFile).
			With(bettererrors.NewFromErr(err)),
		)
	}

	printSummary(skirmish.Summary())
}

func replayAction(filename string, every int) {
	assert.Assert(filename != "", "--file must be set")

	if every < 1 {
		every = 1
	}

	replayer, err := replay.NewReplayer(filename)
	if err != nil {
		utils.FailWith(bettererrors.New("Could not replay game").With(bettererrors.NewFromErr(err)))
	}
	defer replayer.Close()

	metadata, err := replayer.ReadMetadata()
	if err != nil {
		utils.FailWith(bettererrors.New("Could not replay game").With(bettererrors.NewFromErr(err)))
	}

	log.Println("Replaying game#" + metadata.GameID + " recorded " + metadata.Date + " by dogfight " + metadata.Version)
	printConfig(metadata.Config)

	messages, err := replayer.Read()
	if err != nil {
		utils.FailWith(bettererrors.New("Could not replay game").With(bettererrors.NewFromErr(err)))
	}

	nbframes := 0
	for msg := range messages {
		if nbframes%every == 0 {
			log.Println(msg.Line)
		}
		nbframes++
	}

	log.Println("Replayed " + strconv.Itoa(nbframes) + " frames")
}

func reportStats(metricsClient *influxdb.Client, skirmish *skirmish) {
	stats := skirmish.game.GetStats()

	err := metricsClient.WriteAppMetric("combat", map[string]interface{}{
		"shotsfired":         stats.ShotsFired,
		"projectilesexpired": stats.ProjectilesExpired,
	})

	if err != nil {
		log.Println("Could not report metrics: " + err.Error())
	}
}
