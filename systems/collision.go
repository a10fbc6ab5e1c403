package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CollisionSystem turns physics contacts into gameplay: birds stop flying,
// pigs and blocks take impact damage.
type CollisionSystem struct {
	space  *physics.Space
	birds  *BirdSystem
	events RoundEvents
	cfg    config.DamageConfig
	ground cp.BB
	log    *log.Logger
}

func NewCollisionSystem(space *physics.Space, birds *BirdSystem, events RoundEvents, settings config.Settings, logger *log.Logger) *CollisionSystem {
	return &CollisionSystem{
		space:  space,
		birds:  birds,
		events: events,
		cfg:    settings.Damage,
		ground: settings.Physics.Ground(),
		log:    logger,
	}
}

// Damage is the health lost to an impact at speed.
func (c *CollisionSystem) Damage(speed float64) float64 {
	if speed <= c.cfg.MinImpactSpeed {
		return 0
	}
	return (speed - c.cfg.MinImpactSpeed) * c.cfg.Scale
}

// Update dispatches the contacts recorded during the last physics step.
func (c *CollisionSystem) Update(e *ecs.ECS) {
	for _, contact := range c.space.Contacts() {
		entry, ok := contact.Self.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		switch contact.Self.Category() {
		case physics.CategoryBird:
			c.birds.Collide(entry)
		case physics.CategoryPig:
			c.hitPig(entry, contact.Speed)
		case physics.CategoryBlock:
			c.hitBlock(e, entry, contact.Speed)
		}
	}
}

func (c *CollisionSystem) hitPig(pig *donburi.Entry, speed float64) {
	damage := c.Damage(speed)
	if damage == 0 {
		return
	}
	pd := components.Pig.Get(pig)
	if pd.Health <= 0 {
		return
	}
	pd.Health -= damage
	c.log.Debug("pig hit", "type", pd.Type, "damage", damage, "health", pd.Health)
	if pd.Health <= 0 {
		c.events.PigKilled(pig)
	}
}

func (c *CollisionSystem) hitBlock(e *ecs.ECS, block *donburi.Entry, speed float64) {
	damage := c.Damage(speed)
	if damage == 0 {
		return
	}
	bd := components.Block.Get(block)
	bd.Health -= damage
	if bd.Health <= 0 {
		c.log.Debug("block destroyed", "type", bd.Type, "material", bd.Material)
		DestroyBody(e, c.space, block)
	}
}

// Sweep removes pigs and blocks that fell out of the arena. Lost pigs count
// as killed.
func (c *CollisionSystem) Sweep(e *ecs.ECS) {
	var pigs, blocks []*donburi.Entry
	tags.Pig.Each(e.World, func(pig *donburi.Entry) {
		if c.outside(pig) {
			pigs = append(pigs, pig)
		}
	})
	tags.Block.Each(e.World, func(block *donburi.Entry) {
		if c.outside(block) {
			blocks = append(blocks, block)
		}
	})

	for _, pig := range pigs {
		c.log.Debug("pig left the arena", "type", components.Pig.Get(pig).Type)
		c.events.PigKilled(pig)
	}
	for _, block := range blocks {
		DestroyBody(e, c.space, block)
	}
}

func (c *CollisionSystem) outside(entry *donburi.Entry) bool {
	body := components.Body.Get(entry)
	return body.Body != nil && !body.Removed() && gamemath.OutOfWorld(body.BB(), c.ground)
}

// DestroyBody removes an entity together with its rigid body and trigger
// object.
func DestroyBody(e *ecs.ECS, space *physics.Space, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Body) {
		space.Remove(components.Body.Get(entry).Body)
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil {
			if ts, ok := components.TriggerSpace.First(e.World); ok {
				components.TriggerSpace.Get(ts).Space.Remove(obj.Object)
			}
		}
	}
	e.World.Remove(entry.Entity())
}
