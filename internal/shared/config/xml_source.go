package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// gnossXML mirrors gnoss.config.xml:
//
//	<config>
//	  <consumer><consumerKey/><consumerSecret/></consumer>
//	  <token><tokenKey/><tokenSecret/></token>
//	  <apiEndpoint/><communityShortName/><developerEmail/>
//	  <log><logPath/><logFileName/><logLevel/></log>
//	</config>
type gnossXML struct {
	XMLName  xml.Name `xml:"config"`
	Consumer struct {
		Key    string `xml:"consumerKey"`
		Secret string `xml:"consumerSecret"`
	} `xml:"consumer"`
	Token struct {
		Key    string `xml:"tokenKey"`
		Secret string `xml:"tokenSecret"`
	} `xml:"token"`
	APIEndpoint        string `xml:"apiEndpoint"`
	CommunityShortName string `xml:"communityShortName"`
	DeveloperEmail     string `xml:"developerEmail"`
	Log                struct {
		Path     string `xml:"logPath"`
		FileName string `xml:"logFileName"`
		Level    string `xml:"logLevel"`
	} `xml:"log"`
}

// readXML turns the XML file into the nested map viper understands. Empty
// elements are left out so that IsSet stays false for them.
func readXML(path string) (map[string]interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read xml file: %w", err)
	}

	var doc gnossXML
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("config: failed to parse xml file: %w", err)
	}

	gnoss := map[string]interface{}{}
	put(gnoss, "consumer_key", doc.Consumer.Key)
	put(gnoss, "consumer_secret", doc.Consumer.Secret)
	put(gnoss, "token_key", doc.Token.Key)
	put(gnoss, "token_secret", doc.Token.Secret)
	put(gnoss, "api_endpoint", doc.APIEndpoint)
	put(gnoss, "community_short_name", doc.CommunityShortName)
	put(gnoss, "developer_email", doc.DeveloperEmail)

	logging := map[string]interface{}{}
	put(logging, "path", doc.Log.Path)
	put(logging, "file_name", doc.Log.FileName)
	put(logging, "level", doc.Log.Level)

	return map[string]interface{}{
		"gnoss":   gnoss,
		"logging": logging,
	}, nil
}

func put(m map[string]interface{}, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		m[key] = value
	}
}
