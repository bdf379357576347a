package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	PropertyPendingAudit string `mapstructure:"propertyPendingAudit" yaml:"propertyPendingAudit"` //  房源提交待审核主题
	UserNotification     string `mapstructure:"userNotification" yaml:"userNotification"`         //  站内通知主题
}
