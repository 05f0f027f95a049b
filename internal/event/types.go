package event

const (
	BlockSpawned  EventType = "BlockSpawned"  // Data: types.EntityID
	BlockMined    EventType = "BlockMined"    // добыча завершена, Data: types.EntityID
	BlockBroken   EventType = "BlockBroken"   // блок перешёл в разрушенное состояние
	BlockRemoved  EventType = "BlockRemoved"  // блок удалён из мира
	EnemySpawned  EventType = "EnemySpawned"  // Data: types.EntityID
	PlayerCaught  EventType = "PlayerCaught"  // враг коснулся игрока, Data: types.EntityID
	LevelUp       EventType = "LevelUp"       // Data: новый уровень (int)
	MiningStarted EventType = "MiningStarted" // Data: types.EntityID
	MiningStopped EventType = "MiningStopped" // добыча прервана
)
