// Package config loads hyperflex.json.
//
// # Configuration File Structure
//
//	{
//	  "render": {"pretty": true, "indent": "  "},
//	  "server": {"host": "0.0.0.0", "port": 8080, "maxBodyBytes": 1048576},
//	  "metrics": {"enabled": true, "namespace": "hyperflex", "path": "/metrics"},
//	  "tracing": {"enabled": false, "tracerName": "hyperflex"},
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "pages/",
//	    "region": "eu-west-1",
//	    "cacheControl": "max-age=300"
//	  },
//	  "log": {"level": "info", "format": "text"}
//	}
//
// Every field is optional; New and Load fill in defaults.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.ServerAddress())
package config
