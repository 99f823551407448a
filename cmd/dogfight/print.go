package main

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/bytearena/dogfight/common/utils"
	"github.com/bytearena/dogfight/config"
)

func printConfig(conf config.CombatConfig) {
	data, err := json.MarshalIndent(conf, "", "  ")
	utils.Check(err, "Could not serialize the combat configuration")

	log.Println(string(data))
}

func printSummary(summary skirmishSummary) {
	log.Println("Simulated " + strconv.Itoa(int(summary.Ticks)) + " ticks (" + summary.Duration.String() + ")")
	log.Println("  shots fired:          " + strconv.Itoa(summary.ShotsFired))
	log.Println("  projectiles expired:  " + strconv.Itoa(summary.ProjectilesExpired))
	log.Println("  projectiles in flight: " + strconv.Itoa(summary.LiveProjectiles))
	log.Println("  hits:                 " + strconv.Itoa(summary.Hits))
	log.Println("  self hits:            " + strconv.Itoa(summary.SelfHits))
}
