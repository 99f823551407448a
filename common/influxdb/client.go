package influxdb

import (
	"os"
	"strconv"
	"time"

	"github.com/bytearena/dogfight/common/utils"

	"github.com/influxdata/influxdb/client/v2"
)

// Client reports application metrics to InfluxDB.
// When no server is configured it falls back to a stub that logs the points.
type Client struct {
	isStub bool

	batchpointsClient client.BatchPoints
	appName           string
	influxdbClient    client.Client
	tickerChannel     *time.Ticker
}

func createHttpClient(addr string) (client.Client, error) {
	return client.NewHTTPClient(client.HTTPConfig{
		Addr: addr,
	})
}

func createBatchPoints(db string) (client.BatchPoints, error) {
	return client.NewBatchPoints(client.BatchPointsConfig{
		Database: db,
	})
}

// NewClientFromEnv reads INFLUXDB_ADDR and INFLUXDB_DB.
func NewClientFromEnv(appName string, period time.Duration) (*Client, error) {
	return NewClient(appName, os.Getenv("INFLUXDB_ADDR"), os.Getenv("INFLUXDB_DB"), period)
}

func NewClient(appName string, influxdbAddr string, influxdbDb string, period time.Duration) (*Client, error) {
	tickerChannel := time.NewTicker(period)

	stubClient := &Client{
		isStub: true,

		tickerChannel: tickerChannel,
		appName:       appName,
	}

	if influxdbAddr == "" && influxdbDb == "" {
		utils.Debug("influxdb", "No client has been configured")
		return stubClient, nil
	}

	influxdbClient, clientErr := createHttpClient(influxdbAddr)
	if clientErr != nil {
		return stubClient, clientErr
	}

	batchpointsClient, batchpointsErr := createBatchPoints(influxdbDb)
	if batchpointsErr != nil {
		return stubClient, batchpointsErr
	}

	utils.Debug("influxdb", "Influxdb reporting is enabled")

	return &Client{
		isStub: false,

		influxdbClient:    influxdbClient,
		batchpointsClient: batchpointsClient,
		tickerChannel:     tickerChannel,
		appName:           appName,
	}, nil
}

func (c *Client) IsStub() bool {
	return c.isStub
}

func (c *Client) WriteAppMetric(name string, fields map[string]interface{}) error {
	if c.isStub {
		str := name

		for k, v := range fields {
			if vi, isInt := v.(int); isInt {
				str += " " + k + "=" + strconv.Itoa(vi)
			}
		}

		utils.Debug("influxdb-debug", str)
		return nil
	}

	tags := map[string]string{"app": c.appName}

	pt, err := client.NewPoint(name, tags, fields, time.Now())
	if err != nil {
		return err
	}

	c.batchpointsClient.AddPoint(pt)
	return c.influxdbClient.Write(c.batchpointsClient)
}

// Loop calls fn on every tick of the reporting period, until TearDown.
func (c *Client) Loop(fn func()) {
	go func() {
		for range c.tickerChannel.C {
			fn()
		}
	}()
}

func (c *Client) TearDown() {
	c.tickerChannel.Stop()

	if !c.isStub {
		c.influxdbClient.Close()
	}
}
