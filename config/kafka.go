package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	ContentChanged   string `mapstructure:"contentChanged" json:"contentChanged" yaml:"contentChanged"`       //  用户/帖子/评论变更主题 (由 CRUD 层发布)
	RankingRefreshed string `mapstructure:"rankingRefreshed" json:"rankingRefreshed" yaml:"rankingRefreshed"` //  作者排行快照刷新主题
}
