package ecs

import (
	"fmt"
	"reflect"
)

// 泛型访问辅助函数
//
// 系统代码统一使用这些函数访问组件，避免到处书写 reflect.TypeOf：
//
//	actor, ok := ecs.GetComponent[*components.AnimatedActorComponent](em, id)
//	ids := ecs.GetEntitiesWith2[*components.AnimatedActorComponent, *components.TransformComponent](em)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体添加类型为 T 的组件
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 获取实体上类型为 T 的组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// LookupComponent 与 GetComponent 相同，但失败时返回可区分的错误：
//   - ErrEntityNotFound: 实体不存在
//   - ErrComponentNotFound: 实体存在但缺少组件
func LookupComponent[T any](em *EntityManager, id EntityID) (T, error) {
	var zero T
	if !em.EntityExists(id) {
		return zero, fmt.Errorf("entity %d: %w", id, ErrEntityNotFound)
	}
	comp, ok := GetComponent[T](em, id)
	if !ok {
		return zero, fmt.Errorf("entity %d has no %s: %w", id, typeOf[T](), ErrComponentNotFound)
	}
	return comp, nil
}

// HasComponent 检查实体是否拥有类型为 T 的组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 移除实体上类型为 T 的组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有组件 T1、T2、T3 的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}
